package chromatic

import "fmt"

// HexString returns the color as a lowercase hex string: #rrggbb when
// the alpha rounds to 255, otherwise #rrggbbaa.
func (c Color) HexString() string {
	r, g, b, a := c.RGBA8()
	if a < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBString returns the color in CSS rgb() form, or rgba() with the
// raw float alpha when the color is not fully opaque.
func (c Color) RGBString() string {
	r, g, b, _ := c.RGBA8()
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d,%d,%d,%v)", r, g, b, c.A)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// HSLString returns the color in CSS hsl()/hsla() form with the hue
// rounded to a tenth of a degree.
func (c Color) HSLString() string {
	h, s, l, a := c.HSLA()
	if a < 1 {
		return fmt.Sprintf("hsla(%.1f,%.1f%%,%.1f%%,%v)", h, s*100, l*100, a)
	}
	return fmt.Sprintf("hsl(%.1f,%.1f%%,%.1f%%)", h, s*100, l*100)
}

// String implements fmt.Stringer with a debug-friendly form.
func (c Color) String() string {
	return fmt.Sprintf("RGBA(%v,%v,%v,%v)", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler, serializing the color
// as its hex string. Together with UnmarshalText this makes Color a
// drop-in value for JSON, YAML and similar codecs.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.HexString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any
// syntax Parse accepts.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
