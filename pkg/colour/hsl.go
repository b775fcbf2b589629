package colour

import "math"

// RGBToHSL converts RGB to HSL.
// Achromatic colours (all channels equal) have hue 0 and saturation 0.
func RGBToHSL(c RGBA) HSLA {
	r, g, b := c.normalised()
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2

	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSLA{
		H: hueFromRGB(r, g, b, maxVal, delta),
		S: Clamp(0, s*maxPercent, maxPercent),
		L: Clamp(0, l*maxPercent, maxPercent),
		A: c.A,
	}
}

// HSLToRGB converts HSL to RGB.
func HSLToRGB(c HSLA) RGBA {
	h := AdjustHue(c.H) / maxHue
	s := Clamp(0, c.S, maxPercent) / maxPercent
	l := Clamp(0, c.L, maxPercent) / maxPercent

	if s == 0 {
		return rgbFromUnit(l, l, l, c.A)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return rgbFromUnit(
		hueToRGB(p, q, h+1.0/3.0),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3.0),
		c.A,
	)
}

// hueFromRGB returns the hue angle shared by HSL, HSV and HWB.
// r, g and b are in [0, 1]; maxVal and delta are their maximum and range.
func hueFromRGB(r, g, b, maxVal, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	return AdjustHue(h * 60)
}

// hueToRGB evaluates one channel of an HSL colour at phase t.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
