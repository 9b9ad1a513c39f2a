package space

import "github.com/chewxy/math32"

// hueToChannel maps an hour-angle-like value (hue/60, offset per
// channel) through the piecewise HSL ramp between the two reference
// levels n1 and n2. The ramp period is 6.
func hueToChannel(n1, n2, h float32) float32 {
	h = math32.Mod(math32.Mod(h, 6)+6, 6)

	if h < 1 {
		return n1 + (n2-n1)*h
	}
	if h < 3 {
		return n2
	}
	if h < 4 {
		return n1 + (n2-n1)*(4-h)
	}
	return n1
}

// HSLToRGB converts hue [0,360), saturation [0,1] and lightness [0,1]
// to encoded RGB channels in [0,1].
func HSLToRGB(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		// Achromatic; hue carries no information.
		return l, l, l
	}

	var n2 float32
	if l < 0.5 {
		n2 = l * (1 + s)
	} else {
		n2 = l + s - l*s
	}
	n1 := 2*l - n2

	h /= 60
	r = hueToChannel(n1, n2, h+2)
	g = hueToChannel(n1, n2, h)
	b = hueToChannel(n1, n2, h-2)
	return r, g, b
}

// RGBToHSL converts encoded RGB channels in [0,1] to hue [0,360),
// saturation [0,1] and lightness [0,1].
func RGBToHSL(r, g, b float32) (h, s, l float32) {
	min := math32.Min(r, math32.Min(g, b))
	max := math32.Max(r, math32.Max(g, b))
	l = (max + min) / 2

	if min == max {
		return 0, 0, l
	}

	d := max - min

	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2 - max - min)
	}

	dr := (max - r) / d
	dg := (max - g) / d
	db := (max - b) / d

	switch max {
	case r:
		h = db - dg
	case g:
		h = 2 + dr - db
	default:
		h = 4 + dg - dr
	}

	h = math32.Mod(h*60, 360)
	return NormalizeDeg(h), s, l
}
