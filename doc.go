/*
Package raster is a small software drawing surface. It keeps the pixels of an image in memory,
stored as blue, green, red and alpha bytes, and draws lines and circles into it pixel by pixel
using the DDA, Bresenham and midpoint circle algorithms.

The package does not deal with windows or input. A host application owns the surface,
calls the drawing methods, and repaints whenever it is notified that a region has changed:

	package main

	import (
		"image"
		"image/color"
		"log"

		"github.com/holikma/raster"
	)

	func main() {
		var s *raster.Surface
		s, err := raster.NewSurface(320, 240,
			raster.WithRedisplay(func(dirty image.Rectangle) {
				repaint(s.Region(dirty))
			}),
		)
		if err != nil {
			log.Fatal(err)
		}

		s.DrawLine(image.Pt(10, 10), image.Pt(300, 200), color.Black, raster.Bresenham)
		s.DrawCircle(image.Pt(160, 120), image.Pt(200, 120), color.NRGBA{R: 0xff, A: 0xff})
	}

Every pixel write is bounds checked. The drawing methods clip shapes to the surface,
while SetPixel reports coordinates outside of it with ErrOutOfBounds.
*/
package raster
