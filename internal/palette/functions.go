package palette

import "github.com/jsvensson/chromatic"

// Color adjustments backing the HCL palette functions. Each returns a
// new value; the amounts clamp through the chromatic constructors.

func lighten(c chromatic.Color, amt float32) chromatic.Color {
	h, s, l, a := c.HSLA()
	return chromatic.HSLA(h, s, l+amt, a)
}

func darken(c chromatic.Color, amt float32) chromatic.Color {
	return lighten(c, -amt)
}

func saturate(c chromatic.Color, amt float32) chromatic.Color {
	h, s, l, a := c.HSLA()
	return chromatic.HSLA(h, s+amt, l, a)
}

func desaturate(c chromatic.Color, amt float32) chromatic.Color {
	return saturate(c, -amt)
}

// shade sets the absolute Oklab lightness, preserving the color's hue
// and chroma. Useful for building tonal ramps from a single key color.
func shade(c chromatic.Color, lightness float32) chromatic.Color {
	_, a, b, alpha := c.OklabA()
	return chromatic.OklabA(lightness, a, b, alpha)
}

func withAlpha(c chromatic.Color, a float32) chromatic.Color {
	return chromatic.RGBA(c.R, c.G, c.B, a)
}

func complement(c chromatic.Color) chromatic.Color {
	h, s, l, a := c.HSLA()
	return chromatic.HSLA(h+180, s, l, a)
}
