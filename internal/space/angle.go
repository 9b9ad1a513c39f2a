// Package space holds the pure conversion math between color models.
// All functions here are total: out-of-range inputs are wrapped or fed
// through degenerate branches, never rejected.
package space

import "github.com/chewxy/math32"

const tau = 2 * math32.Pi

// NormalizeDeg reduces an angle in degrees to the canonical [0, 360)
// range using a floored modulo, so negative inputs wrap correctly
// (-90 becomes 270).
func NormalizeDeg(d float32) float32 {
	d = math32.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// LerpDeg interpolates between two hue angles in degrees along the
// shortest arc of the color wheel. t=0 yields a0 mod 360, t=1 yields
// a1 mod 360; LerpDeg(360, 90, 0.5) is 45, not the naive 225.
func LerpDeg(a0, a1, t float32) float32 {
	delta := math32.Mod(math32.Mod(a1-a0, 360)+540, 360) - 180
	return math32.Mod(a0+t*delta+360, 360)
}

// LerpRad is LerpDeg over a 2π period, for hue angles in radians.
func LerpRad(a0, a1, t float32) float32 {
	delta := math32.Mod(math32.Mod(a1-a0, tau)+3*math32.Pi, tau) - math32.Pi
	return math32.Mod(a0+t*delta+tau, tau)
}
