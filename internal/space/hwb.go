package space

import "github.com/chewxy/math32"

// HWBToRGB converts hue [0,360), whiteness [0,1] and blackness [0,1]
// to encoded RGB channels. When whiteness and blackness sum to one or
// more the hue is fully washed out and the result collapses to the
// gray white/(white+black).
func HWBToRGB(h, w, b float32) (float32, float32, float32) {
	if w+b >= 1 {
		gray := w / (w + b)
		return gray, gray, gray
	}

	r, g, bl := HSLToRGB(h, 1, 0.5)
	r = r*(1-w-b) + w
	g = g*(1-w-b) + w
	bl = bl*(1-w-b) + w
	return r, g, bl
}

// RGBToHWB converts encoded RGB channels in [0,1] to hue [0,360),
// whiteness [0,1] and blackness [0,1].
func RGBToHWB(r, g, b float32) (h, w, bl float32) {
	h, _, _ = RGBToHSL(r, g, b)
	w = math32.Min(r, math32.Min(g, b))
	bl = 1 - math32.Max(r, math32.Max(g, b))
	return h, w, bl
}
