package xcursor

import (
	"errors"
	"image"
	"io"
	"maps"
	"slices"
)

func init() {
	image.RegisterFormat("xcursor", "Xcur", decodeImage, decodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	cur, err := Decode(r)
	if err != nil {
		return nil, err
	}
	img := cur.Frame(0, 0)
	if img == nil {
		return nil, errors.New("no images in cursor")
	}
	return img.Image, nil
}

func decodeConfig(r io.Reader) (image.Config, error) {
	img, err := decodeImage(r)
	if err != nil {
		return image.Config{}, err
	}

	bounds := img.Bounds()
	return image.Config{
		ColorModel: img.ColorModel(),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}, nil
}

// Cursor is a decoded cursor file. A file can hold the cursor at
// several nominal sizes, each of which may be animated.
type Cursor struct {
	Comments []*Comment

	// Images maps nominal sizes to the frames at that size, in the
	// order that they appear in the file.
	Images map[int][]*Image
}

// Sizes returns the nominal sizes available in c in ascending order.
func (c *Cursor) Sizes() []int {
	return slices.Sorted(maps.Keys(c.Images))
}

// BestSize returns the available nominal size closest to size,
// preferring the larger of two equally close sizes. It returns 0 if c
// has no images.
func (c *Cursor) BestSize(size int) int {
	best := 0
	for _, s := range c.Sizes() {
		if best == 0 || abs(s-size) <= abs(best-size) {
			best = s
		}
	}
	return best
}

// Frame returns frame i of the cursor at the size closest to size.
// The frame index wraps around so that animations can be played by
// incrementing it, but it must not be negative. It returns nil if c
// has no images.
func (c *Cursor) Frame(size, i int) *Image {
	frames := c.Images[c.BestSize(size)]
	if len(frames) == 0 {
		return nil
	}
	return frames[i%len(frames)]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
