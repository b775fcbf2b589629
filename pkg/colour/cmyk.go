package colour

import "math"

// RGBToCMYK converts RGB to naive, uncalibrated CMYK.
// This is an approximation: no ICC profile or device calibration is applied.
func RGBToCMYK(c RGBA) CMYKA {
	r, g, b := c.normalised()
	k := 1 - math.Max(r, math.Max(g, b))

	if k == 1 {
		return CMYKA{K: maxPercent, A: c.A}
	}

	ink := func(v float64) float64 {
		return (1 - v - k) / (1 - k) * maxPercent
	}

	return CMYKA{
		C: ink(r),
		M: ink(g),
		Y: ink(b),
		K: k * maxPercent,
		A: c.A,
	}
}

// CMYKToRGB converts naive CMYK to RGB.
func CMYKToRGB(c CMYKA) RGBA {
	k := Clamp(0, c.K, maxPercent) / maxPercent
	channel := func(v float64) float64 {
		return (1 - Clamp(0, v, maxPercent)/maxPercent) * (1 - k)
	}
	return rgbFromUnit(channel(c.C), channel(c.M), channel(c.Y), c.A)
}
