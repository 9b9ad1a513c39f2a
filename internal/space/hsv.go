package space

import "github.com/chewxy/math32"

// hsvToHSL rescales saturation/value into saturation/lightness.
// The l==0 and l==1 branches guard the division in the rescale.
func hsvToHSL(h, s, v float32) (float32, float32, float32) {
	l := (2 - s) * v / 2

	if l != 0 {
		switch {
		case l == 1:
			s = 0
		case l < 0.5:
			s = s * v / (l * 2)
		default:
			s = s * v / (2 - l*2)
		}
	}

	return h, s, l
}

// HSVToRGB converts hue [0,360), saturation [0,1] and value [0,1] to
// encoded RGB channels, bridging through the HSL ramp.
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	return HSLToRGB(hsvToHSL(h, s, v))
}

// RGBToHSV converts encoded RGB channels in [0,1] to hue [0,360),
// saturation [0,1] and value [0,1].
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	v = math32.Max(r, math32.Max(g, b))
	d := v - math32.Min(r, math32.Min(g, b))

	if d == 0 {
		return 0, 0, v
	}

	s = d / v
	dr := (v - r) / d
	dg := (v - g) / d
	db := (v - b) / d

	switch v {
	case r:
		h = db - dg
	case g:
		h = 2 + dr - db
	default:
		h = 4 + dg - dr
	}

	h = math32.Mod(h*60, 360)
	return NormalizeDeg(h), s, v
}
