package space

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{360, 0},
		{400, 40},
		{1155, 75},
		{-360, 0},
		{-90, 270},
		{-765, 315},
	}

	for _, tt := range tests {
		got := NormalizeDeg(tt.in)
		assert.Equal(t, tt.want, got, "NormalizeDeg(%v)", tt.in)
		assert.GreaterOrEqual(t, got, float32(0))
		assert.Less(t, got, float32(360))
	}
}

func TestNormalizeDegPeriodic(t *testing.T) {
	for _, d := range []float32{0, 12.5, 90, 181, 359.5} {
		for _, k := range []float32{-2, -1, 1, 3} {
			assert.InDelta(t, NormalizeDeg(d), NormalizeDeg(d+360*k), 1e-3,
				"NormalizeDeg(%v + 360*%v)", d, k)
		}
	}
}

func TestLerpDeg(t *testing.T) {
	tests := []struct {
		a0, a1, t float32
		want      float32
	}{
		{0, 360, 0.5, 0},
		{360, 90, 0, 0},
		{360, 90, 0.5, 45}, // shortest arc passes through 0, not 225
		{360, 90, 1, 90},
		{10, 350, 0.5, 0},
		{350, 10, 0.5, 0},
		{0, 90, 0.5, 45},
	}

	for _, tt := range tests {
		got := LerpDeg(tt.a0, tt.a1, tt.t)
		assert.InDelta(t, tt.want, got, 1e-4, "LerpDeg(%v, %v, %v)", tt.a0, tt.a1, tt.t)
	}
}

func TestLerpDegEndpoints(t *testing.T) {
	for _, pair := range [][2]float32{{-90, 45}, {720, 10}, {359, 1}} {
		a0, a1 := pair[0], pair[1]
		assert.InDelta(t, NormalizeDeg(a0), LerpDeg(a0, a1, 0), 1e-4)
		assert.InDelta(t, NormalizeDeg(a1), LerpDeg(a0, a1, 1), 1e-4)
	}
}

func TestLerpRad(t *testing.T) {
	// Same shortest-arc behavior as the degree variant, scaled to 2π.
	got := LerpRad(2*math32.Pi, math32.Pi/2, 0.5)
	assert.InDelta(t, math32.Pi/4, got, 1e-4)

	assert.InDelta(t, math32.Pi/2, LerpRad(math32.Pi/2, math32.Pi, 0), 1e-4)
	assert.InDelta(t, math32.Pi, LerpRad(math32.Pi/2, math32.Pi, 1), 1e-4)
}
