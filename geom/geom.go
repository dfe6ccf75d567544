// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// is generic over the coordinate type and, unlike image.Rectangle,
// does not assume that a rectangle is well-formed. Gestures routinely
// drag one edge of a rectangle past the opposite one, so a Rect with
// a negative width or height is a perfectly valid value here.
package geom

import (
	"iter"
	"strings"

	"deedles.dev/xiter"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgeAll = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

var edgeNames = [...]string{"top", "bottom", "left", "right"}

// All yields each individual edge set in e in the order top, bottom,
// left, right.
func (e Edges) All() iter.Seq[Edges] {
	return func(yield func(Edges) bool) {
		for edge := EdgeTop; edge <= EdgeRight; edge <<= 1 {
			if e&edge == 0 {
				continue
			}
			if !yield(edge) {
				return
			}
		}
	}
}

// Has returns true if every edge in edges is also in e.
func (e Edges) Has(edges Edges) bool {
	return e&edges == edges
}

// Any returns true if at least one edge in edges is also in e.
func (e Edges) Any(edges Edges) bool {
	return e&edges != 0
}

// Opposite returns the edges on the other side of the rectangle from
// each of the edges in e.
func (e Edges) Opposite() (o Edges) {
	if e&EdgeTop != 0 {
		o |= EdgeBottom
	}
	if e&EdgeBottom != 0 {
		o |= EdgeTop
	}
	if e&EdgeLeft != 0 {
		o |= EdgeRight
	}
	if e&EdgeRight != 0 {
		o |= EdgeLeft
	}
	return o
}

// Name returns the edge names of e concatenated in the order top,
// bottom, left, right, such as "bottomright". It returns an empty
// string for EdgeNone.
func (e Edges) Name() string {
	var buf strings.Builder
	for edge := range e.All() {
		buf.WriteString(edgeName(edge))
	}
	return buf.String()
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf strings.Builder
	for i, edge := range xiter.Enumerate(e.All()) {
		if i > 0 {
			buf.WriteByte('|')
		}
		buf.WriteString(edgeName(edge))
	}
	return buf.String()
}

// ParseEdge returns the single edge with the given name, one of
// "top", "bottom", "left", or "right".
func ParseEdge(name string) (Edges, bool) {
	for i, n := range edgeNames {
		if n == name {
			return EdgeTop << i, true
		}
	}
	return EdgeNone, false
}

func edgeName(edge Edges) string {
	switch edge {
	case EdgeTop:
		return edgeNames[0]
	case EdgeBottom:
		return edgeNames[1]
	case EdgeLeft:
		return edgeNames[2]
	case EdgeRight:
		return edgeNames[3]
	default:
		panic("not a single edge")
	}
}
