package colour

import (
	"math"
	"sync"
)

// HueTo sets the HSL hue. Angles wrap onto [0, 360).
func (c *Colour) HueTo(hue float64) *Colour {
	hsl := c.HSLA()
	hsl.H = AdjustHue(hue)
	return c.setHSLA(hsl)
}

// HueBy shifts the HSL hue by delta degrees.
func (c *Colour) HueBy(delta float64) *Colour {
	hsl := c.HSLA()
	hsl.H = AdjustHue(hsl.H + delta)
	return c.setHSLA(hsl)
}

// Rotate is HueBy.
func (c *Colour) Rotate(degrees float64) *Colour {
	return c.HueBy(degrees)
}

// SaturationTo sets the HSL saturation in percent.
func (c *Colour) SaturationTo(saturation float64) *Colour {
	hsl := c.HSLA()
	hsl.S = clampPercent(saturation)
	return c.setHSLA(hsl)
}

// SaturateBy adds delta percentage points of HSL saturation.
func (c *Colour) SaturateBy(delta float64) *Colour {
	hsl := c.HSLA()
	hsl.S = clampPercent(hsl.S + delta)
	return c.setHSLA(hsl)
}

// DesaturateBy removes delta percentage points of HSL saturation.
func (c *Colour) DesaturateBy(delta float64) *Colour {
	return c.SaturateBy(-delta)
}

// LightnessTo sets the HSL lightness in percent.
func (c *Colour) LightnessTo(lightness float64) *Colour {
	hsl := c.HSLA()
	hsl.L = clampPercent(lightness)
	return c.setHSLA(hsl)
}

// LighterBy adds delta percentage points of HSL lightness.
func (c *Colour) LighterBy(delta float64) *Colour {
	hsl := c.HSLA()
	hsl.L = clampPercent(hsl.L + delta)
	return c.setHSLA(hsl)
}

// DarkerBy removes delta percentage points of HSL lightness.
func (c *Colour) DarkerBy(delta float64) *Colour {
	return c.LighterBy(-delta)
}

// AlphaTo sets the alpha channel, clamped to [0, 1].
func (c *Colour) AlphaTo(alpha float64) *Colour {
	c.rgba.A = AdjustAlpha(alpha)
	return c
}

// AlphaBy adds delta to the alpha channel.
func (c *Colour) AlphaBy(delta float64) *Colour {
	return c.AlphaTo(c.rgba.A + delta)
}

// Invert replaces every colour channel with its complement, and alpha too
// when includeAlpha is set.
func (c *Colour) Invert(includeAlpha bool) *Colour {
	inv := RGBA{
		R: maxChannel - c.rgba.R,
		G: maxChannel - c.rgba.G,
		B: maxChannel - c.rgba.B,
		A: c.rgba.A,
	}
	if includeAlpha {
		inv.A = 1 - c.rgba.A
	}
	c.hue = AdjustHue(c.hue + maxHue/2)
	return c.setRGBA(inv)
}

// Grayscale removes all saturation, keeping hue and lightness.
func (c *Colour) Grayscale() *Colour {
	return c.DesaturateBy(maxPercent)
}

// ClosestWebSafe snaps the colour to the nearest of the 216 web-safe colours,
// keeping alpha.
func (c *Colour) ClosestWebSafe() *Colour {
	best := webSafePalette()[0]
	bestDiff := math.Inf(1)
	for _, p := range webSafePalette() {
		if d := ChannelWiseDifference(c.rgba, p); d < bestDiff {
			best, bestDiff = p, d
		}
	}
	best.A = c.rgba.A
	return c.setRGBA(best)
}

// webSafePalette holds every colour whose channels are multiples of 0x33.
var webSafePalette = sync.OnceValue(func() []RGBA {
	const step = 0x33
	palette := make([]RGBA, 0, 6*6*6)
	for r := 0; r <= maxChannel; r += step {
		for g := 0; g <= maxChannel; g += step {
			for b := 0; b <= maxChannel; b += step {
				palette = append(palette, RGBA{R: float64(r), G: float64(g), B: float64(b), A: 1})
			}
		}
	}
	return palette
})
