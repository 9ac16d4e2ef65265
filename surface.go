package raster

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrNilImage is returned by Replace when no source image is given.
var ErrNilImage = errors.New("nil source image")

// Surface is a drawing area backed by an exclusively owned Buffer.
// Every lifecycle operation builds the new buffer first and swaps it in
// afterwards, so a failed call leaves the surface as it was.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	buf  *Buffer
	opts options
}

// NewSurface creates a surface of the given size filled with the background color.
// A zero size is valid and produces an empty surface.
func NewSurface(width, height int, opts ...Option) (*Surface, error) {
	s := &Surface{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&s.opts)
	}

	buf, err := s.newBuffer(width, height)
	if err != nil {
		return nil, err
	}
	s.buf = buf

	Logger().Debug("surface created", "width", width, "height", height)
	return s, nil
}

func (s *Surface) newBuffer(width, height int) (*Buffer, error) {
	buf, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	buf.Fill(s.opts.background)
	return buf, nil
}

// buffer returns the current buffer, so that a zero Surface behaves as an empty one.
func (s *Surface) buffer() *Buffer {
	if s.buf == nil {
		s.buf = &Buffer{}
	}
	return s.buf
}

// notify forwards the dirty rectangle to the redisplay callback.
func (s *Surface) notify(dirty image.Rectangle) {
	if s.opts.redisplay != nil {
		s.opts.redisplay(dirty)
	}
}

// IsEmpty reports whether the surface has no pixels.
func (s *Surface) IsEmpty() bool {
	return s.buf == nil || s.buf.Rect.Empty()
}

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle {
	if s.buf == nil {
		return image.Rectangle{}
	}
	return s.buf.Rect
}

func (s *Surface) Width() int  { return s.Bounds().Dx() }
func (s *Surface) Height() int { return s.Bounds().Dy() }

// Background returns the color used by Resize and Clear.
func (s *Surface) Background() color.NRGBA { return s.opts.background }

// Image exposes the underlying buffer as a read only image.
func (s *Surface) Image() image.Image { return s.buffer() }

// Replace discards the current pixels and adopts a copy of img together with its size.
// The copy is taken, so later changes to img do not affect the surface.
func (s *Surface) Replace(img image.Image) error {
	if img == nil {
		return ErrNilImage
	}

	// imaging.Clone returns an NRGBA copy with the min point moved to (0, 0).
	buf := bufferFromNRGBA(imaging.Clone(img))
	s.buf = buf

	Logger().Debug("surface replaced", "width", buf.Width(), "height", buf.Height())
	s.notify(buf.Rect)
	return nil
}

// Resize discards the current pixels and allocates a new background filled buffer.
// A negative size is rejected and the surface keeps its previous contents.
func (s *Surface) Resize(width, height int) error {
	buf, err := s.newBuffer(width, height)
	if err != nil {
		return err
	}
	s.buf = buf

	Logger().Debug("surface resized", "width", width, "height", height)
	s.notify(buf.Rect)
	return nil
}

// Clear resets every pixel to the background color. The size is unchanged.
func (s *Surface) Clear() {
	buf := s.buffer()
	buf.Fill(s.opts.background)
	s.notify(buf.Rect)
}

// SetPixel writes c at (x, y).
// Any color.Color is accepted, it is converted to non-premultiplied 8 bit channels.
func (s *Surface) SetPixel(x, y int, c color.Color) error {
	return s.buffer().SetNRGBA(x, y, toNRGBA(c))
}

// SetPixelRGBA writes the integer channels at (x, y) after clamping them to [0, 255].
func (s *Surface) SetPixelRGBA(x, y int, r, g, b, a int) error {
	return s.buffer().SetNRGBA(x, y, RGBA8(r, g, b, a))
}

// SetPixelFloat writes the normalized channels at (x, y) after clamping them to [0, 1].
func (s *Surface) SetPixelFloat(x, y int, r, g, b, a float64) error {
	return s.buffer().SetNRGBA(x, y, RGBAFloat(r, g, b, a))
}

// Pixel returns the color stored at (x, y).
func (s *Surface) Pixel(x, y int) (color.NRGBA, error) {
	return s.buffer().NRGBAAt(x, y)
}

// Region returns a copy of the pixels inside r, clipped to the surface.
// Hosts use it to repaint the rectangle reported by the redisplay callback.
func (s *Surface) Region(r image.Rectangle) *image.NRGBA {
	return s.buffer().Region(r)
}
