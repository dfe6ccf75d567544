package resize

import (
	"errors"
	"fmt"
	"math"

	"deedles.dev/xgesture/geom"
)

var (
	ErrInvalidAxis     = errors.New("invalid axis")
	ErrInvalidInvert   = errors.New("invalid invert mode")
	ErrInvalidEdgeRule = errors.New("invalid edge rule")
)

// Axis restricts a resize to one or both dimensions.
type Axis string

const (
	AxisNone Axis = ""
	AxisX    Axis = "x"
	AxisY    Axis = "y"
	AxisXY   Axis = "xy"
)

// ParseAxis parses one of "x", "y", or "xy".
func ParseAxis(s string) (Axis, error) {
	a := Axis(s)
	if !a.Valid() {
		return AxisNone, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
	return a, nil
}

// Valid returns true if a is one of AxisX, AxisY, or AxisXY.
func (a Axis) Valid() bool {
	switch a {
	case AxisX, AxisY, AxisXY:
		return true
	default:
		return false
	}
}

// allows returns true if a permits movement along other, which must
// be AxisX or AxisY.
func (a Axis) allows(other Axis) bool {
	switch other {
	case AxisX:
		return a != AxisY
	case AxisY:
		return a != AxisX
	default:
		return false
	}
}

func (a *Axis) UnmarshalText(text []byte) error {
	v, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Invert is the policy for a rectangle whose edges have been dragged
// past each other.
type Invert string

const (
	// InvertNone clamps each edge so that it can not pass the
	// opposite edge's starting position. The rectangle bottoms out at
	// a width or height of zero.
	InvertNone Invert = "none"

	// InvertNegate lets the rectangle take on a negative width or
	// height.
	InvertNegate Invert = "negate"

	// InvertReposition swaps the offending edges so that the width
	// and height stay positive.
	InvertReposition Invert = "reposition"
)

// ParseInvert parses one of "none", "negate", or "reposition".
func ParseInvert(s string) (Invert, error) {
	switch i := Invert(s); i {
	case InvertNone, InvertNegate, InvertReposition:
		return i, nil
	default:
		return InvertNone, fmt.Errorf("%w: %q", ErrInvalidInvert, s)
	}
}

// Invertible returns true if i allows the edges of a rectangle to
// cross.
func (i Invert) Invertible() bool {
	return i == InvertNegate || i == InvertReposition
}

func (i *Invert) UnmarshalText(text []byte) error {
	v, err := ParseInvert(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// RuleKind identifies the way that an EdgeRule decides whether its
// edge is being grabbed.
type RuleKind int

const (
	// RuleDisabled never activates.
	RuleDisabled RuleKind = iota

	// RuleProximity activates when the pointer is within the margin
	// of the edge.
	RuleProximity

	// RuleSelector activates when the pointer's target, or one of its
	// ancestors up to and including the interactable element, matches
	// a selector.
	RuleSelector

	// RuleElement activates when the pointer's target is a specific
	// handle node.
	RuleElement
)

func (k RuleKind) String() string {
	switch k {
	case RuleDisabled:
		return "disabled"
	case RuleProximity:
		return "proximity"
	case RuleSelector:
		return "selector"
	case RuleElement:
		return "element"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// EdgeRule decides whether a single edge takes part in a resize. The
// zero EdgeRule is disabled.
type EdgeRule struct {
	kind     RuleKind
	selector string
	node     Node
}

// Proximity returns a rule that activates when the pointer is close
// to the edge.
func Proximity() EdgeRule {
	return EdgeRule{kind: RuleProximity}
}

// Selector returns a rule that activates when the pointer is over a
// node matching selector. An empty selector yields a disabled rule.
func Selector(selector string) EdgeRule {
	if selector == "" {
		return EdgeRule{}
	}
	return EdgeRule{kind: RuleSelector, selector: selector}
}

// Element returns a rule that activates when the pointer is over
// handle itself. A nil handle yields a disabled rule.
func Element(handle Node) EdgeRule {
	if handle == nil {
		return EdgeRule{}
	}
	return EdgeRule{kind: RuleElement, node: handle}
}

func (r EdgeRule) Kind() RuleKind { return r.kind }

// SelectorString returns the selector of a RuleSelector rule.
func (r EdgeRule) SelectorString() string { return r.selector }

// Handle returns the node of a RuleElement rule.
func (r EdgeRule) Handle() Node { return r.node }

func (r EdgeRule) String() string {
	switch r.kind {
	case RuleSelector:
		return fmt.Sprintf("selector(%q)", r.selector)
	default:
		return r.kind.String()
	}
}

// EdgeRules holds one rule per edge of the resized element.
type EdgeRules struct {
	Top    EdgeRule `toml:"top"`
	Left   EdgeRule `toml:"left"`
	Bottom EdgeRule `toml:"bottom"`
	Right  EdgeRule `toml:"right"`
}

// ProximityEdges returns rules that activate each of the given edges
// by pointer proximity and disable the rest.
func ProximityEdges(edges geom.Edges) *EdgeRules {
	var rules EdgeRules
	for edge := range edges.All() {
		*rules.rule(edge) = Proximity()
	}
	return &rules
}

// Rule returns the rule for a single edge.
func (rules *EdgeRules) Rule(edge geom.Edges) EdgeRule {
	return *rules.rule(edge)
}

func (rules *EdgeRules) rule(edge geom.Edges) *EdgeRule {
	switch edge {
	case geom.EdgeTop:
		return &rules.Top
	case geom.EdgeLeft:
		return &rules.Left
	case geom.EdgeBottom:
		return &rules.Bottom
	case geom.EdgeRight:
		return &rules.Right
	default:
		panic("not a single edge")
	}
}

// Options configures resizing for one interactable element.
type Options struct {
	// Enabled turns resizing on or off for the element.
	Enabled bool `toml:"enabled"`

	// Edges selects edge-based resizing. If it is nil, resizes are
	// instead detected by axis from the bottom-right corner.
	Edges *EdgeRules `toml:"edges"`

	// Axis limits the axes along which an axis-based resize can be
	// detected and the axes of the delta that is reported.
	Axis Axis `toml:"axis"`

	// Margin is the distance from an edge within which the pointer
	// activates a proximity rule. Zero or NaN means to use the
	// detector's default.
	Margin float64 `toml:"margin"`

	// Square keeps the width and height changing at a 1:1 ratio.
	Square bool `toml:"square"`

	// PreserveAspectRatio keeps the aspect ratio that the element had
	// when the resize started. It takes precedence over Square.
	PreserveAspectRatio bool `toml:"preserve_aspect_ratio"`

	// Invert is the policy for edges that are dragged past each
	// other.
	Invert Invert `toml:"invert"`
}

// DefaultOptions returns the options that an element starts with.
func DefaultOptions() Options {
	return Options{
		Enabled: true,
		Axis:    AxisXY,
		Margin:  math.NaN(),
		Invert:  InvertNone,
	}
}

func (opts *Options) linked() bool {
	return opts.Square || opts.PreserveAspectRatio
}

// Settings is a partial update to Options. Nil fields are left alone.
type Settings struct {
	Enabled *bool
	Edges   *EdgeRules
	Margin  *float64
	Invert  *Invert

	// ClearEdges removes any edge rules, switching the element back
	// to axis-based detection. Edges is ignored if it is set.
	ClearEdges bool

	// Axis is applied only if it is valid. Pointing it at AxisNone
	// resets the axis to the default.
	Axis *Axis

	// PreserveAspectRatio wins over Square: if it is set, Square is
	// ignored.
	PreserveAspectRatio *bool
	Square              *bool
}

// Apply updates opts with s.
func (opts *Options) Apply(s Settings) {
	opts.Enabled = s.Enabled == nil || *s.Enabled
	switch {
	case s.ClearEdges:
		opts.Edges = nil
	case s.Edges != nil:
		opts.Edges = s.Edges
	}
	if s.Margin != nil {
		opts.Margin = *s.Margin
	}
	if s.Invert != nil {
		opts.Invert = *s.Invert
	}

	if s.Axis != nil {
		switch {
		case s.Axis.Valid():
			opts.Axis = *s.Axis
		case *s.Axis == AxisNone:
			opts.Axis = DefaultOptions().Axis
		}
	}

	switch {
	case s.PreserveAspectRatio != nil:
		opts.PreserveAspectRatio = *s.PreserveAspectRatio
	case s.Square != nil:
		opts.Square = *s.Square
	}
}
