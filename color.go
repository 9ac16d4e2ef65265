package raster

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/holikma/raster/utils"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for a name which is neither a known color nor a hex value.
var ErrUnknownColor = errors.New("unknown color")

// White is the default background of a surface.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// RGBA8 builds a color from integer channels.
// Every channel is clamped to [0, 255] instead of wrapping around.
func RGBA8(r, g, b, a int) color.NRGBA {
	return color.NRGBA{
		R: uint8(utils.Clamp(r, 0, 255)),
		G: uint8(utils.Clamp(g, 0, 255)),
		B: uint8(utils.Clamp(b, 0, 255)),
		A: uint8(utils.Clamp(a, 0, 255)),
	}
}

// RGBAFloat builds a color from normalized channels.
// Every channel is clamped to [0, 1], scaled to 255 and rounded to the nearest integer,
// so that RGBAFloat(v/255, ...) and RGBA8(v, ...) agree for each 0 <= v <= 255.
func RGBAFloat(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{
		R: unitToByte(r),
		G: unitToByte(g),
		B: unitToByte(b),
		A: unitToByte(a),
	}
}

func unitToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(utils.Clamp(v, 0, 1) * 255))
}

// toNRGBA converts any color to its non-premultiplied 8 bit representation.
func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ParseColor resolves a named SVG color (e.g. "red", "cornflowerblue")
// or a hex value (#rgb, #rrggbb, #rrggbbaa).
// Anything else yields an error wrapping ErrUnknownColor.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return toNRGBA(c), nil
	}
	c, err := utils.HexToRGBA(name)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %w", ErrUnknownColor, err)
	}
	return c, nil
}
