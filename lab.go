package chromatic

import (
	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jsvensson/chromatic/internal/space"
)

// CIE Lab and LCh support delegates to go-colorful through the narrow
// adapter below. The library works in float64 and reports LCh hue in
// degrees; both are converted at this boundary. The public LCh hue
// unit is radians, in [0, 2π) — distinct on purpose from the degree
// hues of the cylindrical models.

// Lab returns an opaque color from CIE Lab (D65) components. L is in
// [0, 1]; a and b are unbounded chrominance axes.
func Lab(l, a, b float32) Color {
	return LabA(l, a, b, 1)
}

// LabA is Lab with an alpha channel.
func LabA(l, a, b, alpha float32) Color {
	cf := colorful.Lab(float64(l), float64(a), float64(b)).Clamped()
	return RGBA(float32(cf.R), float32(cf.G), float32(cf.B), alpha)
}

// LabA returns the CIE Lab components and alpha.
func (c Color) LabA() (l, a, b, alpha float32) {
	fl, fa, fb := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Lab()
	return float32(fl), float32(fa), float32(fb), c.A
}

// LCh returns an opaque color from CIE LCh components. The hue hRad is
// in radians.
func LCh(l, ch, hRad float32) Color {
	return LChA(l, ch, hRad, 1)
}

// LChA is LCh with an alpha channel.
func LChA(l, ch, hRad, alpha float32) Color {
	hDeg := float64(hRad) * 180 / float64(math32.Pi)
	cf := colorful.Hcl(hDeg, float64(ch), float64(l)).Clamped()
	return RGBA(float32(cf.R), float32(cf.G), float32(cf.B), alpha)
}

// LChA returns the CIE LCh components and alpha. The hue is in
// radians, in [0, 2π).
func (c Color) LChA() (l, ch, hRad, alpha float32) {
	hDeg, fc, fl := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hcl()
	hRad = float32(hDeg * float64(math32.Pi) / 180)
	if hRad < 0 {
		hRad += 2 * math32.Pi
	}
	return float32(fl), float32(fc), hRad, c.A
}

// InterpolateLab blends in CIE Lab.
func (c Color) InterpolateLab(other Color, t float32) Color {
	l1, a1, b1, alpha1 := c.LabA()
	l2, a2, b2, alpha2 := other.LabA()
	return LabA(
		lerp(l1, l2, t),
		lerp(a1, a2, t),
		lerp(b1, b2, t),
		lerp(alpha1, alpha2, t),
	)
}

// InterpolateLCh blends in CIE LCh with circular hue interpolation
// over the radian circle.
func (c Color) InterpolateLCh(other Color, t float32) Color {
	l1, c1, h1, alpha1 := c.LChA()
	l2, c2, h2, alpha2 := other.LChA()
	return LChA(
		lerp(l1, l2, t),
		lerp(c1, c2, t),
		space.LerpRad(h1, h2, t),
		lerp(alpha1, alpha2, t),
	)
}
