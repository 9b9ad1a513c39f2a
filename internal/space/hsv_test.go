package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float32
		r, g, b float32
	}{
		{"red", 0, 1, 1, 1, 0, 0},
		{"green", 120, 1, 1, 0, 1, 0},
		{"blue", 240, 1, 1, 0, 0, 1},
		{"half value red", 0, 1, 0.5, 0.5, 0, 0},
		{"white", 0, 0, 1, 1, 1, 1},
		{"black", 180, 1, 0, 0, 0, 0},
		{"gray", 90, 0, 0.5, 0.5, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.h, tt.s, tt.v)
			assert.InDelta(t, tt.r, r, 1e-4)
			assert.InDelta(t, tt.g, g, 1e-4)
			assert.InDelta(t, tt.b, b, 1e-4)
		})
	}
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		h, s, v float32
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 1, 1, 1, 0, 0, 1},
		{"red", 1, 0, 0, 0, 1, 1},
		{"cyan", 0, 1, 1, 180, 1, 1},
		{"dark green", 0, 0.5, 0, 120, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, 1e-3)
			assert.InDelta(t, tt.s, s, 1e-4)
			assert.InDelta(t, tt.v, v, 1e-4)
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := [][3]float32{
		{0.9, 0.1, 0.2},
		{0.1, 0.8, 0.3},
		{0.25, 0.3, 0.95},
		{0.6, 0.6, 0.6},
		{1, 1, 0.01},
	}

	for _, c := range colors {
		h, s, v := RGBToHSV(c[0], c[1], c[2])
		r, g, b := HSVToRGB(h, s, v)
		assert.InDelta(t, c[0], r, 2e-4, "red of %v", c)
		assert.InDelta(t, c[1], g, 2e-4, "green of %v", c)
		assert.InDelta(t, c[2], b, 2e-4, "blue of %v", c)
	}
}
