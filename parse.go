package chromatic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is wrapped by every error Parse returns, so callers
// can branch on "not a recognized color syntax" without inspecting the
// message.
var ErrInvalidColor = errors.New("invalid color syntax")

// Parse reads a CSS-style color string: a named color, "transparent",
// a hex literal (#rgb, #rgba, #rrggbb, #rrggbbaa, with or without the
// leading #), or a functional form (rgb, rgba, hsl, hsla, hsv, hwb)
// with comma- or space-separated arguments and an optional slash
// alpha. Numeric components outside their range are clamped or
// wrapped, never rejected; only unrecognizable syntax fails.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty input: %w", ErrInvalidColor)
	}

	if s == "transparent" {
		return Color{}, nil
	}

	if v, ok := namedColors[s]; ok {
		return RGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	if rest, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(rest)
	}

	if open := strings.IndexByte(s, '('); open >= 0 && strings.HasSuffix(s, ")") {
		return parseFunc(strings.TrimSpace(s[:open]), s[open+1:len(s)-1])
	}

	// Bare hex without the # prefix is common enough to accept.
	if c, err := parseHex(s); err == nil {
		return c, nil
	}

	return Color{}, fmt.Errorf("unrecognized color %q: %w", s, ErrInvalidColor)
}

// MustParse is Parse for compile-time-known literals; it panics on
// invalid input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	var digits []uint8
	for i := 0; i < len(s); i++ {
		d, ok := hexNibble(s[i])
		if !ok {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", "#"+s, ErrInvalidColor)
		}
		digits = append(digits, d)
	}

	switch len(digits) {
	case 3:
		return RGB8(digits[0]*17, digits[1]*17, digits[2]*17), nil
	case 4:
		return RGBA8(digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17), nil
	case 6:
		return RGB8(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 8:
		return RGBA8(
			digits[0]<<4|digits[1], digits[2]<<4|digits[3],
			digits[4]<<4|digits[5], digits[6]<<4|digits[7],
		), nil
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: must be 3, 4, 6 or 8 digits: %w", "#"+s, ErrInvalidColor)
	}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func parseFunc(name, args string) (Color, error) {
	fields := splitArgs(args)

	var wantAlpha bool
	switch name {
	case "rgb", "hsl", "hsv", "hwb":
	case "rgba", "hsla":
		wantAlpha = true
	default:
		return Color{}, fmt.Errorf("unknown color function %q: %w", name, ErrInvalidColor)
	}

	if len(fields) < 3 || len(fields) > 4 || (wantAlpha && len(fields) != 4) {
		return Color{}, fmt.Errorf("%s() takes 3 or 4 arguments, got %d: %w", name, len(fields), ErrInvalidColor)
	}

	alpha := float32(1)
	if len(fields) == 4 {
		a, err := parseScalar(fields[3])
		if err != nil {
			return Color{}, err
		}
		alpha = a
	}

	switch name {
	case "rgb", "rgba":
		r, err := parseRGBChannel(fields[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseRGBChannel(fields[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseRGBChannel(fields[2])
		if err != nil {
			return Color{}, err
		}
		return RGBA(r, g, b, alpha), nil
	}

	// The remaining forms are cylindrical: hue first, then two scalars.
	h, err := parseHue(fields[0])
	if err != nil {
		return Color{}, err
	}
	x, err := parseScalar(fields[1])
	if err != nil {
		return Color{}, err
	}
	y, err := parseScalar(fields[2])
	if err != nil {
		return Color{}, err
	}

	switch name {
	case "hsl", "hsla":
		return HSLA(h, x, y, alpha), nil
	case "hsv":
		return HSVA(h, x, y, alpha), nil
	default: // hwb
		return HWBA(h, x, y, alpha), nil
	}
}

// splitArgs tolerates both the legacy comma syntax and the modern
// space syntax with a slash before the alpha.
func splitArgs(s string) []string {
	s = strings.NewReplacer(",", " ", "/", " ").Replace(s)
	return strings.Fields(s)
}

// parseRGBChannel reads an rgb() channel: a number on the 0-255 scale
// or a percentage.
func parseRGBChannel(s string) (float32, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseNumber(pct)
		return v / 100, err
	}
	v, err := parseNumber(s)
	return v / 255, err
}

// parseScalar reads a [0,1] component: a plain number or a percentage.
func parseScalar(s string) (float32, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseNumber(pct)
		return v / 100, err
	}
	return parseNumber(s)
}

// parseHue reads an angle and returns degrees. Bare numbers are
// degrees; deg, grad, rad and turn suffixes are accepted.
func parseHue(s string) (float32, error) {
	switch {
	case strings.HasSuffix(s, "deg"):
		return parseNumber(strings.TrimSuffix(s, "deg"))
	case strings.HasSuffix(s, "grad"):
		v, err := parseNumber(strings.TrimSuffix(s, "grad"))
		return v * 360 / 400, err
	case strings.HasSuffix(s, "rad"):
		v, err := parseNumber(strings.TrimSuffix(s, "rad"))
		return v * 180 / 3.14159265358979323846, err
	case strings.HasSuffix(s, "turn"):
		v, err := parseNumber(strings.TrimSuffix(s, "turn"))
		return v * 360, err
	}
	return parseNumber(s)
}

func parseNumber(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, ErrInvalidColor)
	}
	return float32(v), nil
}
