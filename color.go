// Package chromatic is a color value library. A Color holds encoded
// sRGB channels plus straight alpha, and converts to and from linear
// RGB, HSL, HSV, HWB, Oklab, CIE Lab and LCh, with perceptually-aware
// interpolation in each space.
//
// Every conversion is a pure function: out-of-range inputs are clamped
// or wrapped rather than rejected, degenerate inputs (black, white,
// gray) take explicit branches, and no operation in this package can
// fail. The only error path is Parse, for text that is not a
// recognized color syntax.
package chromatic

import (
	"github.com/chewxy/math32"

	"github.com/jsvensson/chromatic/internal/space"
)

// Color is an sRGB color with straight (non-premultiplied) alpha.
// Values produced by the package constructors and conversions keep
// every field in [0, 1]. The fields are deliberately exported without
// a guarding invariant, so multi-step pipelines may hold transient
// out-of-gamut values; see the package constructors for the clamped
// entry points.
type Color struct {
	R, G, B, A float32
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RGB returns an opaque color from encoded sRGB channels in [0, 1].
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns a color from encoded sRGB channels and alpha in [0, 1].
func RGBA(r, g, b, a float32) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// RGB8 returns an opaque color from 8-bit encoded sRGB channels.
func RGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// RGBA8 returns a color from 8-bit encoded sRGB channels and alpha.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// LinearRGB returns an opaque color from linear-light RGB channels.
func LinearRGB(r, g, b float32) Color {
	return LinearRGBA(r, g, b, 1)
}

// LinearRGBA returns a color from linear-light RGB channels and alpha.
// The channels are gamma-encoded; alpha is never gamma-encoded.
func LinearRGBA(r, g, b, a float32) Color {
	return RGBA(
		space.Delinearize(r),
		space.Delinearize(g),
		space.Delinearize(b),
		a,
	)
}

// LinearRGB8 returns an opaque color from 8-bit linear RGB channels.
func LinearRGB8(r, g, b uint8) Color {
	return LinearRGBA(float32(r)/255, float32(g)/255, float32(b)/255, 1)
}

// LinearRGBA8 returns a color from 8-bit linear RGB channels and alpha.
func LinearRGBA8(r, g, b, a uint8) Color {
	return LinearRGBA(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
}

// HSL returns an opaque color from hue in degrees, saturation and
// lightness in [0, 1]. The hue wraps; saturation and lightness clamp.
func HSL(h, s, l float32) Color {
	return HSLA(h, s, l, 1)
}

// HSLA is HSL with an alpha channel.
func HSLA(h, s, l, a float32) Color {
	r, g, b := space.HSLToRGB(space.NormalizeDeg(h), clamp01(s), clamp01(l))
	return RGBA(r, g, b, a)
}

// HSV returns an opaque color from hue in degrees, saturation and
// value in [0, 1].
func HSV(h, s, v float32) Color {
	return HSVA(h, s, v, 1)
}

// HSVA is HSV with an alpha channel.
func HSVA(h, s, v, a float32) Color {
	r, g, b := space.HSVToRGB(space.NormalizeDeg(h), clamp01(s), clamp01(v))
	return RGBA(r, g, b, a)
}

// HWB returns an opaque color from hue in degrees, whiteness and
// blackness in [0, 1].
func HWB(h, w, b float32) Color {
	return HWBA(h, w, b, 1)
}

// HWBA is HWB with an alpha channel.
func HWBA(h, w, b, a float32) Color {
	red, green, blue := space.HWBToRGB(space.NormalizeDeg(h), clamp01(w), clamp01(b))
	return RGBA(red, green, blue, a)
}

// Oklab returns an opaque color from Oklab perceived lightness and the
// two unbounded chrominance axes.
func Oklab(l, a, b float32) Color {
	return OklabA(l, a, b, 1)
}

// OklabA is Oklab with an alpha channel.
func OklabA(l, a, b, alpha float32) Color {
	r, g, bl := space.OklabToLinearRGB(l, a, b)
	return LinearRGBA(r, g, bl, alpha)
}

// RGBA8 returns the color as 8-bit encoded sRGB channels plus alpha.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A)
}

func channel8(v float32) uint8 {
	return uint8(math32.Round(clamp01(v) * 255))
}

// LinearRGBA returns the linear-light RGB channels plus alpha.
func (c Color) LinearRGBA() (r, g, b, a float32) {
	return space.Linearize(c.R), space.Linearize(c.G), space.Linearize(c.B), c.A
}

// LinearRGBA8 returns the linear-light channels as 8-bit values.
func (c Color) LinearRGBA8() (r, g, b, a uint8) {
	lr, lg, lb, la := c.LinearRGBA()
	return channel8(lr), channel8(lg), channel8(lb), channel8(la)
}

// HSLA returns hue in degrees [0, 360), saturation, lightness and
// alpha. Achromatic colors report hue and saturation zero.
func (c Color) HSLA() (h, s, l, a float32) {
	h, s, l = space.RGBToHSL(c.R, c.G, c.B)
	return h, s, l, c.A
}

// HSVA returns hue in degrees [0, 360), saturation, value and alpha.
func (c Color) HSVA() (h, s, v, a float32) {
	h, s, v = space.RGBToHSV(c.R, c.G, c.B)
	return h, s, v, c.A
}

// HWBA returns hue in degrees [0, 360), whiteness, blackness and alpha.
func (c Color) HWBA() (h, w, b, a float32) {
	h, w, b = space.RGBToHWB(c.R, c.G, c.B)
	return h, w, b, c.A
}

// OklabA returns the Oklab lightness, chrominance axes and alpha.
func (c Color) OklabA() (l, aa, b, alpha float32) {
	lr, lg, lb, _ := c.LinearRGBA()
	l, aa, b = space.LinearRGBToOklab(lr, lg, lb)
	return l, aa, b, c.A
}
