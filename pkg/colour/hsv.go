package colour

import "math"

// RGBToHSV converts RGB to HSV.
func RGBToHSV(c RGBA) HSVA {
	r, g, b := c.normalised()
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	var s float64
	if maxVal != 0 {
		s = delta / maxVal
	}

	return HSVA{
		H: hueFromRGB(r, g, b, maxVal, delta),
		S: s * maxPercent,
		V: maxVal * maxPercent,
		A: c.A,
	}
}

// HSVToRGB converts HSV to RGB using the six hue sectors.
func HSVToRGB(c HSVA) RGBA {
	h := AdjustHue(c.H) / 60
	s := Clamp(0, c.S, maxPercent) / maxPercent
	v := Clamp(0, c.V, maxPercent) / maxPercent

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return rgbFromUnit(r+m, g+m, b+m, c.A)
}

// RGBToHWB converts RGB to HWB by way of HSV.
func RGBToHWB(c RGBA) HWBA {
	hsv := RGBToHSV(c)
	s := hsv.S / maxPercent
	v := hsv.V / maxPercent

	return HWBA{
		H: hsv.H,
		W: (1 - s) * v * maxPercent,
		B: (1 - v) * maxPercent,
		A: c.A,
	}
}

// HWBToRGB converts HWB to RGB by way of HSV.
// When whiteness and blackness sum past 100% they are scaled down
// proportionally, giving a grey.
func HWBToRGB(c HWBA) RGBA {
	w := Clamp(0, c.W, maxPercent) / maxPercent
	b := Clamp(0, c.B, maxPercent) / maxPercent

	if w+b >= 1 {
		grey := w / (w + b)
		return rgbFromUnit(grey, grey, grey, c.A)
	}

	v := 1 - b
	return HSVToRGB(HSVA{
		H: c.H,
		S: (1 - w/v) * maxPercent,
		V: v * maxPercent,
		A: c.A,
	})
}
