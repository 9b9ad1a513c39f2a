package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		r, g, b float32
	}{
		{"red", 0, 1, 0.5, 1, 0, 0},
		{"green", 120, 1, 0.5, 0, 1, 0},
		{"blue", 240, 1, 0.5, 0, 0, 1},
		{"yellow", 60, 1, 0.5, 1, 1, 0},
		{"dark blue", 240, 1, 0.25, 0, 0, 0.5},
		{"white", 0, 0, 1, 1, 1, 1},
		{"black", 200, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSLToRGB(tt.h, tt.s, tt.l)
			assert.InDelta(t, tt.r, r, 1e-4)
			assert.InDelta(t, tt.g, g, 1e-4)
			assert.InDelta(t, tt.b, b, 1e-4)
		})
	}
}

func TestHSLToRGBAchromatic(t *testing.T) {
	// Zero saturation collapses to gray regardless of hue.
	for _, h := range []float32{0, 47, 120, 273, 359} {
		r, g, b := HSLToRGB(h, 0, 0.42)
		assert.Equal(t, float32(0.42), r)
		assert.Equal(t, float32(0.42), g)
		assert.Equal(t, float32(0.42), b)
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		h, s, l float32
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 1, 1, 1, 0, 0, 1},
		{"gray", 0.5, 0.5, 0.5, 0, 0, 0.5},
		{"red", 1, 0, 0, 0, 1, 0.5},
		{"green", 0, 1, 0, 120, 1, 0.5},
		{"blue", 0, 0, 1, 240, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, 1e-3)
			assert.InDelta(t, tt.s, s, 1e-4)
			assert.InDelta(t, tt.l, l, 1e-4)
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	colors := [][3]float32{
		{0.9, 0.1, 0.2},
		{0.1, 0.8, 0.3},
		{0.25, 0.3, 0.95},
		{0.7, 0.7, 0.1},
		{0.01, 0.5, 0.99},
	}

	for _, c := range colors {
		h, s, l := RGBToHSL(c[0], c[1], c[2])
		r, g, b := HSLToRGB(h, s, l)
		assert.InDelta(t, c[0], r, 2e-4, "red of %v", c)
		assert.InDelta(t, c[1], g, 2e-4, "green of %v", c)
		assert.InDelta(t, c[2], b, 2e-4, "blue of %v", c)
	}
}
