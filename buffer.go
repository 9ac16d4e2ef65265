package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrInvalidDimensions is returned when a buffer is requested with a negative size.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds is returned by pixel accessors for coordinates outside of the buffer.
	ErrOutOfBounds = errors.New("pixel out of bounds")
)

// Buffer is an in-memory image whose pixels are stored as four bytes in B, G, R, A order.
// The channels are not alpha premultiplied. The origin of Rect is always (0, 0).
//
// All mutation goes through SetNRGBA, which rejects coordinates outside of Rect.
type Buffer struct {
	// Pix holds the pixels. The pixel at (x, y) starts at Pix[y*Stride+x*4].
	Pix []uint8
	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the image bounds.
	Rect image.Rectangle
}

var _ image.Image = (*Buffer)(nil)

// NewBuffer allocates a zeroed buffer of the given size.
// A zero width or height yields a valid empty buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		Pix:    make([]uint8, width*height*4),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Width returns the number of pixel columns.
func (b *Buffer) Width() int { return b.Rect.Dx() }

// Height returns the number of pixel rows.
func (b *Buffer) Height() int { return b.Rect.Dy() }

func (b *Buffer) Bounds() image.Rectangle { return b.Rect }

func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

// At implements image.Image. Points outside of the buffer are transparent.
func (b *Buffer) At(x, y int) color.Color {
	c, _ := b.NRGBAAt(x, y)
	return c
}

// PixOffset returns the index of the first element of Pix that corresponds to the pixel at (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*4
}

// NRGBAAt returns the color stored at (x, y).
func (b *Buffer) NRGBAAt(x, y int) (color.NRGBA, error) {
	if !(image.Point{x, y}.In(b.Rect)) {
		return color.NRGBA{}, fmt.Errorf("%w: (%d,%d) not in %v", ErrOutOfBounds, x, y, b.Rect)
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+4 : i+4]
	return color.NRGBA{B: s[0], G: s[1], R: s[2], A: s[3]}, nil
}

// SetNRGBA writes the color at (x, y). It is the only place pixels are written.
func (b *Buffer) SetNRGBA(x, y int, c color.NRGBA) error {
	if !(image.Point{x, y}.In(b.Rect)) {
		return fmt.Errorf("%w: (%d,%d) not in %v", ErrOutOfBounds, x, y, b.Rect)
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+4 : i+4]
	s[0] = c.B
	s[1] = c.G
	s[2] = c.R
	s[3] = c.A
	return nil
}

// Fill sets every pixel of the buffer to c.
func (b *Buffer) Fill(c color.NRGBA) {
	w, h := b.Width(), b.Height()
	if w == 0 || h == 0 {
		return
	}

	// Fill the first row, then replicate it over the remaining rows.
	row := b.Pix[:w*4]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = c.B
		row[i+1] = c.G
		row[i+2] = c.R
		row[i+3] = c.A
	}
	for y := 1; y < h; y++ {
		i := b.PixOffset(0, y)
		copy(b.Pix[i:i+w*4], row)
	}
}

// Region returns a copy of the pixels inside r, clipped to the buffer bounds.
// The returned image keeps the coordinates of r, so it can be drawn back at the same position.
func (b *Buffer) Region(r image.Rectangle) *image.NRGBA {
	r = r.Intersect(b.Rect)
	dst := image.NewNRGBA(r)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := b.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[di+0] = b.Pix[si+2]
			dst.Pix[di+1] = b.Pix[si+1]
			dst.Pix[di+2] = b.Pix[si+0]
			dst.Pix[di+3] = b.Pix[si+3]
			si += 4
			di += 4
		}
	}

	return dst
}

// bufferFromNRGBA converts an image with its min point at (0, 0) to a Buffer.
func bufferFromNRGBA(src *image.NRGBA) *Buffer {
	dx, dy := src.Rect.Dx(), src.Rect.Dy()
	dst, _ := NewBuffer(dx, dy)

	for y := 0; y < dy; y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < dx; x++ {
			dst.Pix[di+0] = src.Pix[si+2]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+0]
			dst.Pix[di+3] = src.Pix[si+3]
			si += 4
			di += 4
		}
	}

	return dst
}
