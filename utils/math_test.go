package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(5, Max(5, 2))
	assert.Equal(-1.5, Min(-1.5, 0.0))
}

func TestMath_Abs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 0.25, Abs(-0.25))
}

func TestMath_Clamp(t *testing.T) {
	testCases := []struct {
		in, want int
	}{
		{300, 255},
		{-10, 0},
		{0, 0},
		{255, 255},
		{128, 128},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Clamp(tc.in, 0, 255))
	}
	assert.Equal(t, 1.0, Clamp(1.5, 0.0, 1.0))
	assert.Equal(t, 0.0, Clamp(-0.2, 0.0, 1.0))
}
