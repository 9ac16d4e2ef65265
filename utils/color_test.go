package utils

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_HexToRGBA(t *testing.T) {
	testCases := []struct {
		hex  string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"00ff00", color.NRGBA{G: 0xff, A: 0xff}},
		{"#00f", color.NRGBA{B: 0xff, A: 0xff}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"#FFFFFF", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.hex, func(t *testing.T) {
			c, err := HexToRGBA(tc.hex)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestColor_HexToRGBAInvalid(t *testing.T) {
	for _, s := range []string{"", "#", "#12", "#12345", "#gggggg", "0xffff"} {
		_, err := HexToRGBA(s)
		assert.True(t, errors.Is(err, ErrInvalidHex), "expected ErrInvalidHex for %q", s)
	}
}
