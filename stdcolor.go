package chromatic

import (
	stdcolor "image/color"

	"github.com/chewxy/math32"
)

// Bridges to the standard library color model. Color satisfies
// image/color.Color, so values flow directly into the image packages
// and anything else speaking that interface.

// RGBA implements image/color.Color: alpha-premultiplied 16-bit
// channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(math32.Round(clamp01(c.R) * alpha * 0xffff))
	g = uint32(math32.Round(clamp01(c.G) * alpha * 0xffff))
	b = uint32(math32.Round(clamp01(c.B) * alpha * 0xffff))
	a = uint32(math32.Round(alpha * 0xffff))
	return r, g, b, a
}

// NRGBA returns the color as a non-premultiplied 8-bit stdlib value.
func (c Color) NRGBA() stdcolor.NRGBA {
	r, g, b, a := c.RGBA8()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: a}
}

// FromStdColor converts any image/color.Color into a Color,
// un-premultiplying the alpha.
func FromStdColor(c stdcolor.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	return Color{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 0xffff,
	}
}
