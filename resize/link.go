package resize

import "deedles.dev/xgesture/geom"

// linkEdges returns the edges that move together when the width and
// height of a rectangle being resized from edges are locked to each
// other. Dragging a single edge drags one of its neighbours along
// with it. Each step sees the result of the previous one.
func linkEdges(edges geom.Edges) geom.Edges {
	link := func(edge, neighbour, opposite geom.Edges) {
		if edges&neighbour != 0 && edges&opposite == 0 {
			edges |= edge
		}
	}

	link(geom.EdgeTop, geom.EdgeLeft, geom.EdgeBottom)
	link(geom.EdgeLeft, geom.EdgeTop, geom.EdgeRight)
	link(geom.EdgeBottom, geom.EdgeRight, geom.EdgeTop)
	link(geom.EdgeRight, geom.EdgeBottom, geom.EdgeLeft)

	return edges
}

// constrain rewrites the pointer delta d so that it keeps the
// rectangle at the locked ratio.
func (s *Session) constrain(d Point) Point {
	ratio := 1.0
	if s.opts.PreserveAspectRatio {
		ratio = s.startAspectRatio
	}

	switch e := s.edges; {
	case e.Has(geom.EdgeLeft | geom.EdgeBottom), e.Has(geom.EdgeRight | geom.EdgeTop):
		d.Y = -d.X / ratio
	case e.Any(geom.EdgeLeft | geom.EdgeRight):
		d.Y = d.X / ratio
	case e.Any(geom.EdgeTop | geom.EdgeBottom):
		d.X = d.Y * ratio
	}
	return d
}
