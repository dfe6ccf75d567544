package resize

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// DecodeOptions reads resize options from TOML. Keys that are not
// present keep the values from DefaultOptions. For example,
//
//	axis = "x"
//	invert = "reposition"
//	preserve_aspect_ratio = true
//
//	[edges]
//	right = true
//	bottom = ".resize-s"
//
// enables proximity-based resizing from the right edge and resizing
// from the bottom edge via any handle matching ".resize-s". Element
// handles can not be expressed in TOML.
func DecodeOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.NewDecoder(r).Decode(&opts)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("decode: %w", err)
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		return DefaultOptions(), fmt.Errorf("unknown key %q", keys[0].String())
	}
	return opts, nil
}

// LoadOptions reads resize options from the TOML file at path. See
// DecodeOptions.
func LoadOptions(path string) (Options, error) {
	file, err := os.Open(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return DecodeOptions(file)
}

// UnmarshalTOML decodes a rule from a TOML boolean, which yields a
// proximity or disabled rule, or a string, which yields a selector
// rule.
func (r *EdgeRule) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case bool:
		*r = EdgeRule{}
		if v {
			*r = Proximity()
		}
		return nil
	case string:
		*r = Selector(v)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidEdgeRule, v)
	}
}
