package resize

import (
	"math"

	"deedles.dev/xgesture"
	"deedles.dev/xgesture/geom"
)

type (
	Rect  = geom.Rect[float64]
	Point = geom.Point[float64]
)

// Node is an element in the host's document tree. Implementations
// must be comparable, as handle rules compare nodes with ==, and
// Parent must return a nil interface, not a typed nil, at the root.
type Node interface {
	Parent() Node
	Matches(selector string) bool
}

// Pointer is the state of the pointer at the moment a resize is being
// detected.
type Pointer struct {
	// Page is the pointer's position in page coordinates.
	Page Point

	// Target is the node that the pointer is over. It may be nil.
	Target Node
}

// Prepared is the classification of a gesture as a resize. Edge-based
// detection sets Edges and axis-based detection sets Axes. The zero
// Prepared is not a resize.
type Prepared struct {
	Edges geom.Edges
	Axes  Axis
}

// IsZero returns true if p does not describe a resize.
func (p Prepared) IsZero() bool {
	return p.Edges == geom.EdgeNone && p.Axes == AxisNone
}

// DefaultMargin returns the proximity margin to use for a class of
// input device. Coarse devices, such as touch screens, get a wider
// margin to make up for their lower precision.
func DefaultMargin(coarse bool) float64 {
	if coarse {
		return 20
	}
	return 10
}

// Detector classifies pointer-down positions as resize gestures.
type Detector struct {
	// DefaultMargin is the margin used when the options do not
	// specify one. It is also always the margin used for axis-based
	// detection.
	DefaultMargin float64
}

// Check decides whether the pointer starts a resize of element, whose
// bounding rectangle is bounds. It returns false if bounds is nil,
// opts is nil or disabled, or no edge or axis is grabbed.
func (d Detector) Check(ptr Pointer, opts *Options, element Node, bounds *Rect) (Prepared, bool) {
	if bounds == nil || opts == nil || !opts.Enabled {
		return Prepared{}, false
	}

	if opts.Edges != nil {
		margin := opts.Margin
		if margin == 0 || math.IsNaN(margin) {
			margin = d.DefaultMargin
		}

		var edges geom.Edges
		for edge := range geom.EdgeAll.All() {
			if checkEdge(edge, opts.Edges.Rule(edge), ptr, element, *bounds, margin) {
				edges |= edge
			}
		}
		if edges.Has(geom.EdgeLeft | geom.EdgeRight) {
			edges &^= geom.EdgeLeft
		}
		if edges.Has(geom.EdgeTop | geom.EdgeBottom) {
			edges &^= geom.EdgeTop
		}

		if edges == geom.EdgeNone {
			return Prepared{}, false
		}
		xgesture.Logger().Debug("resize edges detected", "edges", edges, "page", ptr.Page)
		return Prepared{Edges: edges}, true
	}

	right := opts.Axis.allows(AxisX) && ptr.Page.X > bounds.Max.X-d.DefaultMargin
	bottom := opts.Axis.allows(AxisY) && ptr.Page.Y > bounds.Max.Y-d.DefaultMargin

	var axes Axis
	if right {
		axes += AxisX
	}
	if bottom {
		axes += AxisY
	}
	if axes == AxisNone {
		return Prepared{}, false
	}
	xgesture.Logger().Debug("resize axes detected", "axes", axes, "page", ptr.Page)
	return Prepared{Axes: axes}, true
}

func checkEdge(edge geom.Edges, rule EdgeRule, ptr Pointer, element Node, bounds Rect, margin float64) bool {
	switch rule.kind {
	case RuleProximity:
		return nearEdge(edge, ptr.Page, bounds, margin)
	case RuleElement:
		return ptr.Target != nil && ptr.Target == rule.node
	case RuleSelector:
		return ptr.Target != nil && matchesUpTo(ptr.Target, rule.selector, element)
	default:
		return false
	}
}

// nearEdge reports whether p is within margin of the line that edge
// of r lies on, measured towards the inside of r. If r is inverted
// along an axis, the inside of that axis is on the other side of the
// line and the capped margin is negative, so the zone starts past
// the line.
func nearEdge(edge geom.Edges, p Point, r Rect, margin float64) bool {
	w, h := r.Dx(), r.Dy()
	if edge.Any(geom.EdgeLeft | geom.EdgeRight) {
		margin = min(margin, w/2)
	} else {
		margin = min(margin, h/2)
	}

	line := r.Edge(edge)
	switch edge {
	case geom.EdgeLeft:
		return insideOf(p.X, line, margin, w >= 0)
	case geom.EdgeRight:
		return insideOf(p.X, line, margin, w < 0)
	case geom.EdgeTop:
		return insideOf(p.Y, line, margin, h >= 0)
	case geom.EdgeBottom:
		return insideOf(p.Y, line, margin, h < 0)
	default:
		return false
	}
}

// insideOf reports whether v is less than line+margin if below is
// true, or greater than line-margin otherwise.
func insideOf(v, line, margin float64, below bool) bool {
	if below {
		return v < line+margin
	}
	return v > line-margin
}

// matchesUpTo reports whether node or any of its ancestors up to and
// including limit matches selector.
func matchesUpTo(node Node, selector string, limit Node) bool {
	for n := node; n != nil; n = n.Parent() {
		if n.Matches(selector) {
			return true
		}
		if n == limit {
			break
		}
	}
	return false
}
