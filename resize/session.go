package resize

import (
	"deedles.dev/xgesture"
	"deedles.dev/xgesture/geom"
)

// DeltaRect is the change in each edge and dimension of a rectangle
// between two frames.
type DeltaRect struct {
	Top, Left, Bottom, Right float64
	Width, Height            float64
}

func deltaBetween(cur, prev Rect) DeltaRect {
	return DeltaRect{
		Top:    cur.Min.Y - prev.Min.Y,
		Left:   cur.Min.X - prev.Min.X,
		Bottom: cur.Max.Y - prev.Max.Y,
		Right:  cur.Max.X - prev.Max.X,
		Width:  cur.Dx() - prev.Dx(),
		Height: cur.Dy() - prev.Dy(),
	}
}

// Event carries the state of one step of a resize. The host fills in
// Delta, and Bounds for the first step, and the resize fills in the
// rest.
type Event struct {
	// Interaction is the interaction that the event belongs to. It is
	// only needed when events are dispatched through an Action.
	Interaction *Interaction

	// Bounds is the element's bounding rectangle. It is read when the
	// resize starts.
	Bounds Rect

	// Delta is the pointer movement since the previous event. It is
	// rewritten to respect the resize's axes.
	Delta Point

	// Edges are the edges being dragged.
	Edges geom.Edges

	// Rect is the resized rectangle after the invert policy has been
	// applied.
	Rect Rect

	// DeltaRect is the change in Rect since the previous event.
	DeltaRect DeltaRect

	// Axes are the axes that Delta is restricted to.
	Axes Axis
}

// Session tracks a single resize gesture from start to end. A Session
// must not be shared between interactions.
type Session struct {
	opts   Options
	edges  geom.Edges
	linked geom.Edges
	axes   Axis

	startAspectRatio float64

	start    Rect
	current  Rect
	inverted Rect
	previous Rect
	delta    DeltaRect
}

// NewSession returns a session for the prepared resize of an element
// whose bounding rectangle is bounds. The options are copied.
func NewSession(p Prepared, bounds Rect, opts Options) *Session {
	s := Session{
		opts:     opts,
		edges:    p.Edges,
		axes:     p.Axes,
		start:    bounds,
		current:  bounds,
		inverted: bounds,
		previous: bounds,
	}
	if s.axes == AxisNone {
		s.axes = AxisXY
	}
	if opts.linked() {
		s.linked = linkEdges(p.Edges)
	}
	if opts.PreserveAspectRatio {
		s.startAspectRatio = bounds.Aspect()
	}

	xgesture.Logger().Debug(
		"resize started",
		"edges", s.edges,
		"axes", s.axes,
		"bounds", bounds,
		"linked", s.linked,
	)

	return &s
}

// Edges returns the edges that the resize was started from.
func (s *Session) Edges() geom.Edges { return s.edges }

// Axes returns the axes that the resize's deltas are restricted to.
func (s *Session) Axes() Axis { return s.axes }

// Start returns the rectangle that the resize started with.
func (s *Session) Start() Rect { return s.start }

// Rect returns the current rectangle with the invert policy applied.
func (s *Session) Rect() Rect { return s.inverted }

// Delta returns the change in Rect caused by the most recent move.
func (s *Session) Delta() DeltaRect { return s.delta }

// Begin fills in ev for the first step of the resize.
func (s *Session) Begin(ev *Event) {
	s.emit(ev)
	normalizeAxes(ev, &s.opts, s.axes)
}

// Move applies the pointer movement in ev.Delta to the rectangle and
// fills in the rest of ev.
func (s *Session) Move(ev *Event) {
	if s.edges != geom.EdgeNone {
		s.update(ev.Delta)
	}
	s.emit(ev)
	normalizeAxes(ev, &s.opts, s.axes)
}

// End fills in ev with the final state of the resize. Nothing is
// recalculated.
func (s *Session) End(ev *Event) {
	s.emit(ev)
	xgesture.Logger().Debug("resize ended", "edges", s.edges, "rect", s.inverted)
}

func (s *Session) emit(ev *Event) {
	ev.Edges = s.edges
	ev.Rect = s.inverted
	ev.DeltaRect = s.delta
}

func (s *Session) update(d Point) {
	edges := s.edges
	if s.opts.linked() {
		edges = s.linked
		d = s.constrain(d)
	}

	s.current = s.current.MoveEdges(edges, d)
	s.previous = s.inverted
	s.inverted = s.invert(s.current)
	s.delta = deltaBetween(s.inverted, s.previous)
}

func (s *Session) invert(r Rect) Rect {
	switch s.opts.Invert {
	case InvertNegate:
		return r
	case InvertReposition:
		return r.Canon()
	default:
		return geom.Rt(
			min(r.Min.X, s.start.Max.X),
			min(r.Min.Y, s.start.Max.Y),
			max(r.Max.X, s.start.Min.X),
			max(r.Max.Y, s.start.Min.Y),
		)
	}
}
