// Package scan enumerates the integer pixel coordinates covered by lines and circles.
//
// The routines are stateless: they know nothing about pixel storage and report
// every computed coordinate to a PlotFunc. Clipping is left to the caller,
// so coordinates may fall outside of any particular buffer.
package scan

import (
	"image"
	"math"

	"github.com/holikma/raster/utils"
)

// PlotFunc receives a single rasterized coordinate.
type PlotFunc func(x, y int)

// DDA rasterizes the segment from p0 towards p1 with the digital differential analyzer.
// It takes max(|dx|, |dy|) equal steps in floating point and rounds each position
// to the nearest pixel. The end point itself is not plotted, and at shallow angles
// the same pixel may be reported more than once. A zero length segment plots p0.
func DDA(p0, p1 image.Point, plot PlotFunc) {
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)
	steps := utils.Max(utils.Abs(dx), utils.Abs(dy))

	if steps == 0 {
		plot(p0.X, p0.Y)
		return
	}

	var (
		xinc = dx / steps
		yinc = dy / steps
		x    = float64(p0.X)
		y    = float64(p0.Y)
	)
	for i := 0; i < int(steps); i++ {
		plot(int(math.Round(x)), int(math.Round(y)))
		x += xinc
		y += yinc
	}
}

// Bresenham rasterizes the segment between p0 and p1 inclusive using
// the integer error accumulator variant of Bresenham's line algorithm.
func Bresenham(p0, p1 image.Point, plot PlotFunc) {
	var (
		x, y = p0.X, p0.Y
		dx   = utils.Abs(p1.X - p0.X)
		dy   = utils.Abs(p1.Y - p0.Y)
		sx   = 1
		sy   = 1
	)
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	err := dx - dy
	for {
		plot(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Radius returns the distance between two points truncated to an integer.
func Radius(center, edge image.Point) int {
	d := edge.Sub(center)
	return int(math.Hypot(float64(d.X), float64(d.Y)))
}

// Circle rasterizes the circle of radius r around center with the midpoint algorithm.
// Each octant step plots the eight symmetric points first and only then updates
// the decision variable. Points on the axes and diagonals are reported more than once.
// A zero radius reports the center, a negative one plots nothing.
func Circle(center image.Point, r int, plot PlotFunc) {
	if r < 0 {
		return
	}

	x, y := 0, r
	p := 1 - r
	for x <= y {
		octants(center, x, y, plot)

		if p > 0 {
			p += 2*(x-y) + 5
			y--
		} else {
			p += 2*x + 3
		}
		x++
	}
}

// octants plots the eight points symmetric to (x, y) around c.
func octants(c image.Point, x, y int, plot PlotFunc) {
	plot(c.X+x, c.Y+y)
	plot(c.X-x, c.Y+y)
	plot(c.X+x, c.Y-y)
	plot(c.X-x, c.Y-y)
	plot(c.X+y, c.Y+x)
	plot(c.X-y, c.Y+x)
	plot(c.X+y, c.Y-x)
	plot(c.X-y, c.Y-x)
}

// Points runs a rasterizer and collects every reported coordinate in order.
func Points(fn func(PlotFunc)) []image.Point {
	var pts []image.Point
	fn(func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}
