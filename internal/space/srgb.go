package space

import "github.com/chewxy/math32"

// Linearize removes the sRGB transfer function from a single encoded
// channel, returning the light-linear value.
func Linearize(x float32) float32 {
	if x >= 0.04045 {
		return math32.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// Delinearize applies the sRGB transfer function to a single linear
// channel, returning the gamma-encoded value.
func Delinearize(x float32) float32 {
	if x >= 0.0031308 {
		return 1.055*math32.Pow(x, 1/2.4) - 0.055
	}
	return 12.92 * x
}
