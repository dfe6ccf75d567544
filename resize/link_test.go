package resize

import (
	"testing"

	"deedles.dev/xgesture/geom"
	"github.com/stretchr/testify/require"
)

func TestLinkEdges(t *testing.T) {
	tests := []struct {
		edges  geom.Edges
		linked geom.Edges
	}{
		{geom.EdgeNone, geom.EdgeNone},
		{geom.EdgeTop, geom.EdgeTop | geom.EdgeLeft},
		{geom.EdgeLeft, geom.EdgeTop | geom.EdgeLeft},
		{geom.EdgeBottom, geom.EdgeBottom | geom.EdgeRight},
		{geom.EdgeRight, geom.EdgeBottom | geom.EdgeRight},
		{geom.EdgeTop | geom.EdgeLeft, geom.EdgeTop | geom.EdgeLeft},
		{geom.EdgeTop | geom.EdgeRight, geom.EdgeTop | geom.EdgeRight},
		{geom.EdgeBottom | geom.EdgeLeft, geom.EdgeBottom | geom.EdgeLeft},
		{geom.EdgeBottom | geom.EdgeRight, geom.EdgeBottom | geom.EdgeRight},
	}
	for _, test := range tests {
		t.Run(test.edges.String(), func(t *testing.T) {
			require.Equal(t, test.linked, linkEdges(test.edges))
		})
	}
}

func TestConstrain(t *testing.T) {
	tests := []struct {
		name  string
		edges geom.Edges
		ratio float64
		in    Point
		out   Point
	}{
		{"Right", geom.EdgeRight, 2, geom.Pt(10.0, 3), geom.Pt(10.0, 5)},
		{"Left", geom.EdgeLeft, 2, geom.Pt(-10.0, 3), geom.Pt(-10.0, -5)},
		{"Top", geom.EdgeTop, 2, geom.Pt(1.0, -10), geom.Pt(-20.0, -10)},
		{"Bottom", geom.EdgeBottom, 0.5, geom.Pt(1.0, 10), geom.Pt(5.0, 10)},
		{"TopRight", geom.EdgeTop | geom.EdgeRight, 2, geom.Pt(10.0, 3), geom.Pt(10.0, -5)},
		{"BottomLeft", geom.EdgeBottom | geom.EdgeLeft, 2, geom.Pt(-10.0, 3), geom.Pt(-10.0, 5)},
		{"TopLeft", geom.EdgeTop | geom.EdgeLeft, 2, geom.Pt(-10.0, 3), geom.Pt(-10.0, -5)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := Session{
				opts:             Options{PreserveAspectRatio: true},
				edges:            test.edges,
				startAspectRatio: test.ratio,
			}
			require.Equal(t, test.out, s.constrain(test.in))
		})
	}

	s := Session{opts: Options{Square: true}, edges: geom.EdgeRight, startAspectRatio: 4}
	require.Equal(t, geom.Pt(7.0, 7), s.constrain(geom.Pt(7.0, 0)))
}
