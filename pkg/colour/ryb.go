package colour

import "math"

// RGBToRYB converts RGB to artistic RYB.
//
// The white component is set aside, yellow is taken from the red and green
// overlap, and what green remains is split between yellow and blue. The
// result is rescaled so the strongest RYB channel matches the strongest RGB
// channel before white is added back. RYBToRGB undoes each step, so round
// trips are exact up to float rounding.
//
// Sugita & Takahashi, "Computational RYB Color Model and its Applications",
// IWAIT 2015.
func RGBToRYB(c RGBA) RYBA {
	r, g, b := c.R, c.G, c.B

	white := math.Min(r, math.Min(g, b))
	r, g, b = r-white, g-white, b-white
	maxRGB := math.Max(r, math.Max(g, b))

	y := math.Min(r, g)
	r, g = r-y, g-y

	if b > 0 && g > 0 {
		b /= 2
		g /= 2
	}
	y += g
	b += g

	if maxRYB := math.Max(r, math.Max(y, b)); maxRYB > 0 {
		n := maxRGB / maxRYB
		r, y, b = r*n, y*n, b*n
	}

	return RYBA{
		R: Clamp(0, r+white, maxChannel),
		Y: Clamp(0, y+white, maxChannel),
		B: Clamp(0, b+white, maxChannel),
		A: c.A,
	}
}

// RYBToRGB converts artistic RYB back to RGB.
func RYBToRGB(c RYBA) RGBA {
	r := Clamp(0, c.R, maxChannel)
	y := Clamp(0, c.Y, maxChannel)
	b := Clamp(0, c.B, maxChannel)

	white := math.Min(r, math.Min(y, b))
	r, y, b = r-white, y-white, b-white
	maxRYB := math.Max(r, math.Max(y, b))

	g := math.Min(y, b)
	y, b = y-g, b-g

	if b > 0 && g > 0 {
		b *= 2
		g *= 2
	}
	r += y
	g += y

	if maxRGB := math.Max(r, math.Max(g, b)); maxRGB > 0 {
		n := maxRYB / maxRGB
		r, g, b = r*n, g*n, b*n
	}

	return RGBA{R: r + white, G: g + white, B: b + white, A: c.A}.ToRGBA()
}
