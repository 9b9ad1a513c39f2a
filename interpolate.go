package chromatic

import "github.com/jsvensson/chromatic/internal/space"

// The Interpolate methods blend two colors inside one color model:
// both operands are projected into that model, each scalar component
// is linearly interpolated, hue components follow the shortest arc of
// the hue circle, and the result is rebuilt through the matching
// constructor, which re-normalizes. The parameter t is not clamped, so
// callers may extrapolate past either endpoint. Alpha always
// interpolates linearly.

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// InterpolateRGB blends in the encoded sRGB space.
func (c Color) InterpolateRGB(other Color, t float32) Color {
	return RGBA(
		lerp(c.R, other.R, t),
		lerp(c.G, other.G, t),
		lerp(c.B, other.B, t),
		lerp(c.A, other.A, t),
	)
}

// InterpolateLinearRGB blends in light-linear RGB, the physically
// correct space for mixing light.
func (c Color) InterpolateLinearRGB(other Color, t float32) Color {
	r1, g1, b1, a1 := c.LinearRGBA()
	r2, g2, b2, a2 := other.LinearRGBA()
	return LinearRGBA(
		lerp(r1, r2, t),
		lerp(g1, g2, t),
		lerp(b1, b2, t),
		lerp(a1, a2, t),
	)
}

// InterpolateHSL blends in HSL with circular hue interpolation.
func (c Color) InterpolateHSL(other Color, t float32) Color {
	h1, s1, l1, a1 := c.HSLA()
	h2, s2, l2, a2 := other.HSLA()
	return HSLA(
		space.LerpDeg(h1, h2, t),
		lerp(s1, s2, t),
		lerp(l1, l2, t),
		lerp(a1, a2, t),
	)
}

// InterpolateHSV blends in HSV with circular hue interpolation.
func (c Color) InterpolateHSV(other Color, t float32) Color {
	h1, s1, v1, a1 := c.HSVA()
	h2, s2, v2, a2 := other.HSVA()
	return HSVA(
		space.LerpDeg(h1, h2, t),
		lerp(s1, s2, t),
		lerp(v1, v2, t),
		lerp(a1, a2, t),
	)
}

// InterpolateHWB blends in HWB with circular hue interpolation.
func (c Color) InterpolateHWB(other Color, t float32) Color {
	h1, w1, b1, a1 := c.HWBA()
	h2, w2, b2, a2 := other.HWBA()
	return HWBA(
		space.LerpDeg(h1, h2, t),
		lerp(w1, w2, t),
		lerp(b1, b2, t),
		lerp(a1, a2, t),
	)
}

// InterpolateOklab blends in the Oklab perceptual space, where equal
// steps in t read as roughly equal perceived steps.
func (c Color) InterpolateOklab(other Color, t float32) Color {
	l1, aa1, b1, a1 := c.OklabA()
	l2, aa2, b2, a2 := other.OklabA()
	return OklabA(
		lerp(l1, l2, t),
		lerp(aa1, aa2, t),
		lerp(b1, b2, t),
		lerp(a1, a2, t),
	)
}
