package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearize(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"below threshold", 0.04, 0.04 / 12.92},
		{"mid gray", 0.5, 0.21404114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Linearize(tt.in), 1e-5)
		})
	}
}

func TestDelinearize(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"below threshold", 0.003, 0.003 * 12.92},
		{"mid gray", 0.21404114, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Delinearize(tt.in), 1e-5)
		})
	}
}

func TestGammaRoundTrip(t *testing.T) {
	for _, x := range []float32{0, 0.001, 0.0031308, 0.04045, 0.1, 0.25, 0.5, 0.73, 1} {
		assert.InDelta(t, x, Delinearize(Linearize(x)), 1e-5, "round trip %v", x)
		assert.InDelta(t, x, Linearize(Delinearize(x)), 1e-5, "inverse round trip %v", x)
	}
}
