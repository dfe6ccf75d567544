package geom

// A Rect is a rectangle bounded by the vertical lines at Min.X and
// Max.X and the horizontal lines at Min.Y and Max.Y. Min.X is the
// left edge, Max.X the right, Min.Y the top and Max.Y the bottom.
//
// A Rect is not required to be well-formed: if Min.X > Max.X the
// rectangle has a negative width, and likewise for the height. Use
// Canon to get the equivalent well-formed rectangle.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect{Pt(x0, y0), Pt(x1, y1)}. Unlike
// image.Rect, the coordinates are not swapped, so the result might
// not be well-formed.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// Dx returns r's width. It is negative if r's edges are inverted
// horizontally.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns r's height. It is negative if r's edges are inverted
// vertically.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

func (r Rect[T]) Size() Point[T] {
	return Point[T]{r.Dx(), r.Dy()}
}

func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{r.Min.Add(p), r.Max.Add(p)}
}

func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{r.Min.Sub(p), r.Max.Sub(p)}
}

// Canon returns the canonical version of r, swapping the minimum and
// maximum coordinates where necessary so that it is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Inverted returns the edges across which r is inverted. EdgeLeft and
// EdgeRight are both set if the width is negative, and EdgeTop and
// EdgeBottom if the height is.
func (r Rect[T]) Inverted() (e Edges) {
	if r.Dx() < 0 {
		e |= EdgeLeft | EdgeRight
	}
	if r.Dy() < 0 {
		e |= EdgeTop | EdgeBottom
	}
	return e
}

func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() Point[T] {
	return r.Min.Add(r.Max).Div(2)
}

// Aspect returns the ratio of r's width to its height.
func (r Rect[T]) Aspect() float64 {
	return float64(r.Dx()) / float64(r.Dy())
}

// Edge returns the coordinate of a single edge of r. It panics if
// edge is not exactly one edge.
func (r Rect[T]) Edge(edge Edges) T {
	switch edge {
	case EdgeTop:
		return r.Min.Y
	case EdgeBottom:
		return r.Max.Y
	case EdgeLeft:
		return r.Min.X
	case EdgeRight:
		return r.Max.X
	default:
		panic("not a single edge")
	}
}

// MoveEdges returns r with each of the given edges shifted by the
// corresponding component of d: top and bottom by d.Y, left and right
// by d.X. Edges not in edges are left where they are.
func (r Rect[T]) MoveEdges(edges Edges, d Point[T]) Rect[T] {
	if edges&EdgeTop != 0 {
		r.Min.Y += d.Y
	}
	if edges&EdgeBottom != 0 {
		r.Max.Y += d.Y
	}
	if edges&EdgeLeft != 0 {
		r.Min.X += d.X
	}
	if edges&EdgeRight != 0 {
		r.Max.X += d.X
	}
	return r
}
