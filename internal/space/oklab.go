package space

import "github.com/chewxy/math32"

// Oklab conversions between linear RGB and the Oklab perceptual space.
// Both directions use fixed matrix constants; the binding contract is
// that the round trip closes within float tolerance. Gamma encoding is
// the caller's concern.

// OklabToLinearRGB converts Oklab (L, a, b) to linear RGB. The
// intermediate cone-like responses are cubed to undo the perceptual
// compression; outputs may fall outside [0,1] for out-of-gamut inputs.
func OklabToLinearRGB(l, a, b float32) (float32, float32, float32) {
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lc = lc * lc * lc
	mc = mc * mc * mc
	sc = sc * sc * sc

	r := 4.0767245293*lc - 3.3072168827*mc + 0.2307590544*sc
	g := -1.2681437731*lc + 2.6093323231*mc - 0.3411344290*sc
	bl := -0.0041119885*lc - 0.7034763098*mc + 1.7068625689*sc
	return r, g, bl
}

// LinearRGBToOklab converts linear RGB to Oklab (L, a, b). Cube roots
// (not fractional powers) compress the cone responses so that negative
// intermediates from out-of-gamut inputs keep their sign.
func LinearRGBToOklab(r, g, b float32) (float32, float32, float32) {
	lc := math32.Cbrt(0.4121656120*r + 0.5362752080*g + 0.0514575653*b)
	mc := math32.Cbrt(0.2118591070*r + 0.6807189584*g + 0.1074065790*b)
	sc := math32.Cbrt(0.0883097947*r + 0.2818474174*g + 0.6302613616*b)

	l := 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a := 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	bl := 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return l, a, bl
}
