package geom

// A Point is an X, Y coordinate pair. The axes increase right and
// down.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{p.X * k, p.Y * k}
}

func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{p.X / k, p.Y / k}
}

func (p Point[T]) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	r = r.Canon()
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}
