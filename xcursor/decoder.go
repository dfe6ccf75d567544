// Package xcursor loads cursors from X cursor themes, such as the
// ones that a desktop uses to show the resize cursors hinted at by
// the resize package.
package xcursor

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"
)

// ErrBadMagic indicates an unrecognized magic number when attempting
// to load a cursor.
var ErrBadMagic = errors.New("bad magic")

const (
	fileMagic = 0x72756358 // ASCII "Xcur"

	tocTypeComment = 0xfffe0001
	tocTypeImage   = 0xfffd0002

	// Arbitrary, but keeps a corrupt header from allocating
	// gigabytes.
	maxImageSize = 0x7fff
)

type CommentSubtype uint32

const (
	CommentSubtypeCopyright CommentSubtype = 1 + iota
	CommentSubtypeLicense
	CommentSubtypeOther
)

type Comment struct {
	Subtype CommentSubtype
	Comment string
}

// Image is a single frame of a cursor.
type Image struct {
	NominalSize int
	Delay       time.Duration

	// Hot is the point in Image that the pointer position
	// corresponds to.
	Hot image.Point

	Image *image.RGBA
}

// DecodeFile decodes the cursor file at path.
func DecodeFile(path string) (*Cursor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode decodes a cursor file from r. If r is an io.Seeker, chunks
// that are far ahead are seeked to instead of read through.
func Decode(r io.Reader) (*Cursor, error) {
	d := decoder{
		r:  r,
		br: bufio.NewReader(r),
	}
	c, err := d.decode()
	if err != nil {
		return nil, err
	}
	return c, nil
}

type decoder struct {
	r  io.Reader
	br *bufio.Reader
	n  int
}

type fileToc struct {
	Type     uint32
	Subtype  uint32
	Position uint32
}

func (d *decoder) decode() (c *Cursor, err error) {
	defer catch(&err)

	c = &Cursor{Images: make(map[int][]*Image)}
	for _, toc := range d.header() {
		d.seekTo(int(toc.Position))
		d.chunkHeader(toc)

		switch toc.Type {
		case tocTypeComment:
			c.Comments = append(c.Comments, d.comment(toc))
		case tocTypeImage:
			img := d.image(toc)
			c.Images[img.NominalSize] = append(c.Images[img.NominalSize], img)
		default:
			throw(fmt.Errorf("unknown TOC type: %x", toc.Type))
		}
	}

	return c, nil
}

func (d *decoder) header() []fileToc {
	if magic := d.uint32(); magic != fileMagic {
		throw(ErrBadMagic)
	}
	hsize := d.uint32()
	d.uint32() // Version.
	ntoc := d.uint32()
	d.discard(int(hsize) - 16)

	tocs := make([]fileToc, 0, min(ntoc, 1024))
	for range ntoc {
		tocs = append(tocs, fileToc{
			Type:     d.uint32(),
			Subtype:  d.uint32(),
			Position: d.uint32(),
		})
	}
	return tocs
}

func (d *decoder) chunkHeader(toc fileToc) {
	d.uint32() // Header size.

	if t := d.uint32(); t != toc.Type {
		throw(fmt.Errorf("TOC type mismatch: expected: %x, got: %x", toc.Type, t))
	}
	if st := d.uint32(); st != toc.Subtype {
		throw(fmt.Errorf("TOC subtype mismatch: expected: %v, got: %v", toc.Subtype, st))
	}

	d.uint32() // Version.
}

func (d *decoder) comment(toc fileToc) *Comment {
	length := d.uint32()
	buf := make([]byte, length)
	d.readFull(buf)

	return &Comment{
		Subtype: CommentSubtype(toc.Subtype),
		Comment: string(buf),
	}
}

func (d *decoder) image(toc fileToc) *Image {
	w, h := d.uint32(), d.uint32()
	xhot, yhot := d.uint32(), d.uint32()
	delay := d.uint32()

	if w > maxImageSize || h > maxImageSize {
		throw(fmt.Errorf("image too large: %vx%v", w, h))
	}
	if xhot > w || yhot > h {
		throw(fmt.Errorf("hotspot (%v, %v) outside of %vx%v image", xhot, yhot, w, h))
	}

	// Pixels are premultiplied ARGB stored as little-endian uint32s,
	// so only the red and blue bytes are out of place for RGBA.
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	d.readFull(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
	}

	return &Image{
		NominalSize: int(toc.Subtype),
		Delay:       time.Duration(delay) * time.Millisecond,
		Hot:         image.Pt(int(xhot), int(yhot)),
		Image:       img,
	}
}

func (d *decoder) uint32() uint32 {
	var buf [4]byte
	d.readFull(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func (d *decoder) readFull(buf []byte) {
	n, err := io.ReadFull(d.br, buf)
	d.n += n
	if err != nil {
		throw(fmt.Errorf("read: %w", err))
	}
}

func (d *decoder) discard(n int) {
	if n <= 0 {
		return
	}
	disc, err := d.br.Discard(n)
	d.n += disc
	if err != nil {
		throw(fmt.Errorf("discard: %w", err))
	}
}

func (d *decoder) seekTo(n int) {
	diff := n - d.n
	if diff < 0 {
		throw(fmt.Errorf("chunk at %v overlaps previous data ending at %v", n, d.n))
	}

	s, ok := d.r.(io.Seeker)
	if !ok || diff <= d.br.Buffered() {
		d.discard(diff)
		return
	}

	_, err := s.Seek(int64(n), io.SeekStart)
	if err != nil {
		throw(fmt.Errorf("seek: %w", err))
	}
	d.br.Reset(d.r)
	d.n = n
}

type decoderError struct {
	err error
}

func throw(err error) {
	panic(decoderError{err: err})
}

func catch(err *error) {
	switch r := recover().(type) {
	case nil:
	case decoderError:
		*err = r.err
	default:
		panic(r)
	}
}
