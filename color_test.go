package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/holikma/raster/utils"
	"github.com/stretchr/testify/assert"
)

func TestColor_ClampInt(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(color.NRGBA{R: 255, G: 0, B: 128, A: 255}, RGBA8(300, -10, 128, 1000))
	assert.Equal(color.NRGBA{}, RGBA8(-1, -256, -300, 0))
}

func TestColor_ClampFloat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(color.NRGBA{R: 255, G: 0, B: 0, A: 255}, RGBAFloat(1.5, -0.2, 0, 1))
	assert.Equal(color.NRGBA{R: 128, A: 255}, RGBAFloat(0.5, 0, 0, 1))
}

func TestColor_FormsAgree(t *testing.T) {
	for v := 0; v <= 255; v++ {
		f := float64(v) / 255
		want := RGBA8(v, 255-v, v/2, 255)
		got := RGBAFloat(f, float64(255-v)/255, float64(v/2)/255, 1)
		if got != want {
			t.Fatalf("channel %d: float form %v, int form %v", v, got, want)
		}
		if c := toNRGBA(want); c != want {
			t.Fatalf("channel %d: structured form %v, int form %v", v, c, want)
		}
	}
}

func TestColor_ToNRGBA(t *testing.T) {
	assert := assert.New(t)

	// Premultiplied input is converted to straight alpha.
	assert.Equal(color.NRGBA{R: 255, A: 128}, toNRGBA(color.RGBA{R: 128, A: 128}))
	assert.Equal(White, toNRGBA(color.White))
	assert.Equal(color.NRGBA{}, toNRGBA(nil))
}

func TestColor_Parse(t *testing.T) {
	assert := assert.New(t)

	red := RGBA8(255, 0, 0, 255)
	for _, name := range []string{"red", " Red ", "#ff0000", "ff0000", "#f00"} {
		c, err := ParseColor(name)
		assert.NoError(err, name)
		assert.Equal(red, c, name)
	}
	assert.Equal(red, RGBAFloat(1, 0, 0, 1))

	c, err := ParseColor("cornflowerblue")
	assert.NoError(err)
	assert.Equal(RGBA8(100, 149, 237, 255), c)

	for _, bad := range []string{"#zzz", "#12345", "notacolor"} {
		_, err = ParseColor(bad)
		assert.True(errors.Is(err, ErrUnknownColor), bad)
	}
	_, err = ParseColor("#zzz")
	assert.True(errors.Is(err, utils.ErrInvalidHex))
}
