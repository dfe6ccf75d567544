package resize

import (
	"deedles.dev/xgesture/xcursor"
)

var cursors = map[string]string{
	"x":  "ew-resize",
	"y":  "ns-resize",
	"xy": "nwse-resize",

	"top":         "ns-resize",
	"left":        "ew-resize",
	"bottom":      "ns-resize",
	"right":       "ew-resize",
	"topleft":     "nwse-resize",
	"bottomright": "nwse-resize",
	"topright":    "nesw-resize",
	"bottomleft":  "nesw-resize",
}

// legacyCursors is for renderers that predate the bidirectional
// cursor keywords.
var legacyCursors = map[string]string{
	"x":  "e-resize",
	"y":  "s-resize",
	"xy": "se-resize",

	"top":         "n-resize",
	"left":        "w-resize",
	"bottom":      "s-resize",
	"right":       "e-resize",
	"topleft":     "se-resize",
	"bottomright": "se-resize",
	"topright":    "ne-resize",
	"bottomleft":  "ne-resize",
}

// X cursor themes don't always ship the CSS names, so each is
// followed by the traditional X11 names for the same shape.
var xcursorNames = map[string][]string{
	"ew-resize":   {"ew-resize", "sb_h_double_arrow", "h_double_arrow", "size_hor"},
	"ns-resize":   {"ns-resize", "sb_v_double_arrow", "v_double_arrow", "size_ver"},
	"nwse-resize": {"nwse-resize", "bd_double_arrow", "size_fdiag"},
	"nesw-resize": {"nesw-resize", "fd_double_arrow", "size_bdiag"},
	"e-resize":    {"e-resize", "right_side"},
	"w-resize":    {"w-resize", "left_side"},
	"n-resize":    {"n-resize", "top_side"},
	"s-resize":    {"s-resize", "bottom_side"},
	"se-resize":   {"se-resize", "bottom_right_corner"},
	"ne-resize":   {"ne-resize", "top_right_corner"},
}

// Cursor returns the CSS cursor keyword that hints at the prepared
// resize, or an empty string if there is none.
func Cursor(p Prepared) string {
	return lookupCursor(cursors, p)
}

// LegacyCursor is like Cursor but only returns the single-direction
// keywords understood by older renderers.
func LegacyCursor(p Prepared) string {
	return lookupCursor(legacyCursors, p)
}

func lookupCursor(table map[string]string, p Prepared) string {
	if p.Edges != 0 {
		return table[p.Edges.Name()]
	}
	return table[string(p.Axes)]
}

// CursorImage finds the image in theme that best matches the cursor
// for the prepared resize at the given nominal size. It returns nil
// if the theme has no suitable cursor.
func CursorImage(theme *xcursor.Theme, p Prepared, size int) *xcursor.Image {
	name := Cursor(p)
	if name == "" {
		return nil
	}

	cur, ok := theme.Find(xcursorNames[name]...)
	if !ok {
		return nil
	}
	return cur.Frame(size, 0)
}
