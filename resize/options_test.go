package resize_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deedles.dev/xgesture/geom"
	"deedles.dev/xgesture/resize"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := resize.DefaultOptions()
	require.True(t, opts.Enabled)
	require.Nil(t, opts.Edges)
	require.Equal(t, resize.AxisXY, opts.Axis)
	require.True(t, math.IsNaN(opts.Margin))
	require.False(t, opts.Square)
	require.False(t, opts.PreserveAspectRatio)
	require.Equal(t, resize.InvertNone, opts.Invert)
}

func TestParse(t *testing.T) {
	for _, s := range []string{"x", "y", "xy"} {
		a, err := resize.ParseAxis(s)
		require.NoError(t, err)
		require.Equal(t, resize.Axis(s), a)
	}
	for _, s := range []string{"", "z", "yx", "XY"} {
		_, err := resize.ParseAxis(s)
		require.ErrorIs(t, err, resize.ErrInvalidAxis)
	}

	for _, s := range []string{"none", "negate", "reposition"} {
		i, err := resize.ParseInvert(s)
		require.NoError(t, err)
		require.Equal(t, resize.Invert(s), i)
	}
	_, err := resize.ParseInvert("flip")
	require.ErrorIs(t, err, resize.ErrInvalidInvert)

	require.False(t, resize.InvertNone.Invertible())
	require.True(t, resize.InvertNegate.Invertible())
	require.True(t, resize.InvertReposition.Invertible())
}

func TestEdgeRules(t *testing.T) {
	rules := resize.ProximityEdges(geom.EdgeTop | geom.EdgeRight)
	require.Equal(t, resize.RuleProximity, rules.Rule(geom.EdgeTop).Kind())
	require.Equal(t, resize.RuleProximity, rules.Rule(geom.EdgeRight).Kind())
	require.Equal(t, resize.RuleDisabled, rules.Rule(geom.EdgeLeft).Kind())
	require.Equal(t, resize.RuleDisabled, rules.Rule(geom.EdgeBottom).Kind())

	sel := resize.Selector(".grip")
	require.Equal(t, resize.RuleSelector, sel.Kind())
	require.Equal(t, ".grip", sel.SelectorString())
	require.Equal(t, `selector(".grip")`, sel.String())
	require.Equal(t, "disabled", resize.EdgeRule{}.String())
}

func ptr[T any](v T) *T { return &v }

func TestApply(t *testing.T) {
	opts := resize.DefaultOptions()
	opts.Apply(resize.Settings{
		Axis:   ptr(resize.AxisX),
		Margin: ptr(4.0),
		Invert: ptr(resize.InvertNegate),
		Edges:  resize.ProximityEdges(geom.EdgeLeft),
		Square: ptr(true),
	})
	require.True(t, opts.Enabled)
	require.Equal(t, resize.AxisX, opts.Axis)
	require.Equal(t, 4.0, opts.Margin)
	require.Equal(t, resize.InvertNegate, opts.Invert)
	require.Equal(t, resize.RuleProximity, opts.Edges.Rule(geom.EdgeLeft).Kind())
	require.True(t, opts.Square)

	opts.Apply(resize.Settings{Axis: ptr(resize.Axis("z"))})
	require.Equal(t, resize.AxisX, opts.Axis, "invalid axes are ignored")

	opts.Apply(resize.Settings{Axis: ptr(resize.AxisNone)})
	require.Equal(t, resize.AxisXY, opts.Axis)

	opts.Apply(resize.Settings{PreserveAspectRatio: ptr(true), Square: ptr(false)})
	require.True(t, opts.PreserveAspectRatio)
	require.True(t, opts.Square, "square is ignored when preserving the aspect ratio")

	opts.Apply(resize.Settings{Enabled: ptr(false)})
	require.False(t, opts.Enabled)
	opts.Apply(resize.Settings{})
	require.True(t, opts.Enabled)
}

func TestApplyClearEdges(t *testing.T) {
	opts := resize.DefaultOptions()
	rules := resize.ProximityEdges(geom.EdgeRight | geom.EdgeBottom)
	opts.Apply(resize.Settings{Edges: rules})
	require.Same(t, rules, opts.Edges)

	opts.Apply(resize.Settings{Margin: ptr(3.0)})
	require.Same(t, rules, opts.Edges, "edges are left alone when unset")

	opts.Apply(resize.Settings{ClearEdges: true, Edges: rules})
	require.Nil(t, opts.Edges)

	bounds := geom.Rt(0.0, 0, 100, 100)
	p, ok := resize.Detector{DefaultMargin: 10}.Check(resize.Pointer{Page: geom.Pt(99.0, 99)}, &opts, nil, &bounds)
	require.True(t, ok)
	require.Equal(t, geom.EdgeNone, p.Edges)
	require.Equal(t, resize.AxisXY, p.Axes)
}

func TestDecodeOptions(t *testing.T) {
	opts, err := resize.DecodeOptions(strings.NewReader(`
axis = "y"
invert = "reposition"
margin = 15
preserve_aspect_ratio = true

[edges]
top = false
right = true
bottom = ".resize-s"
`))
	require.NoError(t, err)
	require.True(t, opts.Enabled)
	require.Equal(t, resize.AxisY, opts.Axis)
	require.Equal(t, resize.InvertReposition, opts.Invert)
	require.Equal(t, 15.0, opts.Margin)
	require.True(t, opts.PreserveAspectRatio)
	require.False(t, opts.Square)

	require.NotNil(t, opts.Edges)
	require.Equal(t, resize.RuleDisabled, opts.Edges.Top.Kind())
	require.Equal(t, resize.RuleDisabled, opts.Edges.Left.Kind())
	require.Equal(t, resize.RuleProximity, opts.Edges.Right.Kind())
	require.Equal(t, resize.Selector(".resize-s"), opts.Edges.Bottom)
}

func TestDecodeOptionsDefaults(t *testing.T) {
	opts, err := resize.DecodeOptions(strings.NewReader("square = true\n"))
	require.NoError(t, err)
	require.True(t, opts.Square)
	require.Nil(t, opts.Edges)
	require.Equal(t, resize.AxisXY, opts.Axis)
	require.True(t, math.IsNaN(opts.Margin))
	require.Equal(t, resize.InvertNone, opts.Invert)
}

func TestDecodeOptionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		err    string
	}{
		{"Axis", `axis = "z"`, "invalid axis"},
		{"Invert", `invert = "flip"`, "invalid invert mode"},
		{"EdgeRule", "[edges]\nleft = 3", "invalid edge rule"},
		{"UnknownKey", "squared = true", "squared"},
		{"Syntax", "axis = ", "decode"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := resize.DecodeOptions(strings.NewReader(test.config))
			require.ErrorContains(t, err, test.err)
		})
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resize.toml")
	require.NoError(t, os.WriteFile(path, []byte("invert = \"negate\"\n"), 0o644))

	opts, err := resize.LoadOptions(path)
	require.NoError(t, err)
	require.Equal(t, resize.InvertNegate, opts.Invert)

	_, err = resize.LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
