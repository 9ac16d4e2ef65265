package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/holikma/raster/scan"
)

var (
	// ErrUnknownAlgorithm is returned when a line is requested with an unsupported algorithm.
	ErrUnknownAlgorithm = errors.New("unknown line algorithm")
	// ErrUnknownShape is returned by DrawShape for an unsupported shape.
	ErrUnknownShape = errors.New("unknown shape")
)

type ShapeType string

const (
	Circle ShapeType = "circle"
	Line   ShapeType = "line"
)

// Algorithm selects how DrawLine rasterizes the segment between its two points.
type Algorithm string

const (
	// DDA steps in floating point and rounds every position. The end point is not plotted.
	DDA Algorithm = "dda"
	// Bresenham uses an integer error term and plots both end points.
	Bresenham Algorithm = "bresenham"
	// CircleFromPoints draws a circle around the start point passing through the end point.
	CircleFromPoints Algorithm = "circle"
)

// ParseAlgorithm returns the algorithm matching name.
// Besides the algorithm names it accepts the numeric selectors 0 (DDA), 1 (Bresenham) and 2 (circle).
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "0", string(DDA):
		return DDA, nil
	case "1", string(Bresenham):
		return Bresenham, nil
	case "2", string(CircleFromPoints):
		return CircleFromPoints, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// pen writes a single color into a buffer, skipping every point outside of it,
// and keeps track of the rectangle it changed.
type pen struct {
	buf   *Buffer
	col   color.NRGBA
	dirty image.Rectangle
}

func (p *pen) plot(x, y int) {
	if err := p.buf.SetNRGBA(x, y, p.col); errors.Is(err, ErrOutOfBounds) {
		return
	}
	pt := image.Pt(x, y)
	p.dirty = p.dirty.Union(image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))})
}

func (s *Surface) newPen(c color.Color) *pen {
	return &pen{buf: s.buffer(), col: toNRGBA(c)}
}

// DrawLine rasterizes the segment from start to end with the selected algorithm.
// Points falling outside of the surface are clipped. The redisplay callback is
// notified once, after all pixels have been written.
func (s *Surface) DrawLine(start, end image.Point, c color.Color, alg Algorithm) error {
	p := s.newPen(c)

	switch alg {
	case DDA:
		scan.DDA(start, end, p.plot)
	case Bresenham:
		scan.Bresenham(start, end, p.plot)
	case CircleFromPoints:
		scan.Circle(start, scan.Radius(start, end), p.plot)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	s.notify(p.dirty)
	return nil
}

// DrawCircle draws the circle centered at center which passes through edge.
// The radius is the distance between the two points truncated to an integer;
// a zero radius draws nothing.
func (s *Surface) DrawCircle(center, edge image.Point, c color.Color) error {
	p := s.newPen(c)
	if r := scan.Radius(center, edge); r > 0 {
		scan.Circle(center, r, p.plot)
	}

	s.notify(p.dirty)
	return nil
}

// DrawShape draws a line or a circle defined by two points.
// Lines use the Bresenham algorithm, circles are centered at start.
func (s *Surface) DrawShape(shape ShapeType, start, end image.Point, c color.Color) error {
	switch shape {
	case Line:
		return s.DrawLine(start, end, c, Bresenham)
	case Circle:
		return s.DrawCircle(start, end, c)
	}
	return fmt.Errorf("%w: %q", ErrUnknownShape, shape)
}
