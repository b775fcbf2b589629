package colour

import "math/rand"

// Colour is a colour held as canonical RGBA together with the format it was
// read from. Every other colour space is derived on demand.
//
// Mutating methods change the colour in place and return it for chaining.
// A Colour must not be mutated from more than one goroutine at a time; use
// Clone to hand out independent copies.
type Colour struct {
	rgba   RGBA
	format Format

	// hue and sat stand in where RGB loses them: hue while the colour is
	// achromatic and sat while it is black or white.
	hue float64
	sat float64
}

// New parses in with the default registry. Use IsValid to check the result.
func New(in Input) *Colour {
	return DefaultRegistry().Parse(in)
}

// Parse parses a textual colour with the default registry.
func Parse(text string) (*Colour, error) {
	return DefaultRegistry().ParseStrict(TextInput(text))
}

// From builds a colour from a record in any colour space.
func From(s Space) *Colour {
	if s == nil {
		return invalidColour()
	}
	return fromSpace(s)
}

// Random returns a colour with uniformly random channels and alpha.
func Random() *Colour {
	return From(RGBA{
		R: float64(RNG(maxChannel)),
		G: float64(RNG(maxChannel)),
		B: float64(RNG(maxChannel)),
		A: rand.Float64(), //nolint:gosec // not used for security
	})
}

func fromSpace(s Space) *Colour {
	c := &Colour{rgba: s.ToRGBA(), format: s.Format()}
	hsl := RGBToHSL(c.rgba)
	c.hue, c.sat = hsl.H, hsl.S
	switch v := s.(type) {
	case HSLA:
		c.hue, c.sat = AdjustHue(v.H), clampPercent(v.S)
	case HSVA:
		c.hue = AdjustHue(v.H)
	case HWBA:
		c.hue = AdjustHue(v.H)
	}
	return c
}

func invalidColour() *Colour {
	return &Colour{rgba: RGBA{A: 1}, format: FormatInvalid}
}

// Clone returns an independent copy of c.
func (c *Colour) Clone() *Colour {
	cp := *c
	return &cp
}

// Format returns the format the colour was read from.
func (c *Colour) Format() Format { return c.format }

// IsValid reports whether a parser recognised the colour's input.
func (c *Colour) IsValid() bool { return c.format != FormatInvalid }

// Red returns the red channel in [0, 255].
func (c *Colour) Red() float64 { return c.rgba.R }

// Green returns the green channel in [0, 255].
func (c *Colour) Green() float64 { return c.rgba.G }

// Blue returns the blue channel in [0, 255].
func (c *Colour) Blue() float64 { return c.rgba.B }

// Alpha returns the alpha channel in [0, 1].
func (c *Colour) Alpha() float64 { return c.rgba.A }

// Hue returns the HSL hue in [0, 360).
func (c *Colour) Hue() float64 { return c.HSLA().H }

// Saturation returns the HSL saturation in percent.
func (c *Colour) Saturation() float64 { return c.HSLA().S }

// Lightness returns the HSL lightness in percent.
func (c *Colour) Lightness() float64 { return c.HSLA().L }

// RGBA returns the canonical record.
func (c *Colour) RGBA() RGBA { return c.rgba }

// HSLA returns the colour in HSL.
func (c *Colour) HSLA() HSLA {
	hsl := RGBToHSL(c.rgba)
	if c.achromatic() {
		hsl.H = c.hue
		if hsl.L == 0 || hsl.L == maxPercent {
			hsl.S = c.sat
		}
	}
	return hsl
}

// HEXA returns the colour as hexadecimal channels.
func (c *Colour) HEXA() HEXA { return RGBToHEX(c.rgba) }

// HSVA returns the colour in HSV.
func (c *Colour) HSVA() HSVA {
	hsv := RGBToHSV(c.rgba)
	if c.achromatic() {
		hsv.H = c.hue
	}
	return hsv
}

// HWBA returns the colour in HWB.
func (c *Colour) HWBA() HWBA {
	hwb := RGBToHWB(c.rgba)
	if c.achromatic() {
		hwb.H = c.hue
	}
	return hwb
}

// CMYKA returns the colour in naive CMYK.
func (c *Colour) CMYKA() CMYKA { return RGBToCMYK(c.rgba) }

// XYZA returns the colour in CIE XYZ.
func (c *Colour) XYZA() XYZA { return RGBToXYZ(c.rgba) }

// LABA returns the colour in CIE LAB.
func (c *Colour) LABA() LABA { return RGBToLAB(c.rgba) }

// LCHA returns the colour in CIE LCH.
func (c *Colour) LCHA() LCHA { return RGBToLCH(c.rgba) }

// LUVA returns the colour in CIE LUV.
func (c *Colour) LUVA() LUVA { return RGBToLUV(c.rgba) }

// UVWA returns the colour in CIE UVW.
func (c *Colour) UVWA() UVWA { return RGBToUVW(c.rgba) }

// RYBA returns the colour in RYB.
func (c *Colour) RYBA() RYBA { return RGBToRYB(c.rgba) }

// Space returns the colour converted to format f.
func (c *Colour) Space(f Format) (Space, error) {
	return Convert(c.rgba, f)
}

// Equal reports whether c and other are the same colour at 8-bit precision,
// alpha included.
func (c *Colour) Equal(other *Colour) bool {
	if other == nil {
		return false
	}
	return c.HEXA() == other.HEXA()
}

// Name returns the CSS name of the colour at 8-bit precision. Translucent
// colours get an " (with opacity)" suffix and fully transparent ones are
// "transparent". It reports false when no name matches.
func (c *Colour) Name() (string, bool) {
	if c.rgba.A == 0 {
		return "transparent", true
	}
	name, ok := nameOf(c.rgba)
	if !ok {
		return "", false
	}
	if c.rgba.A < 1 {
		name += " (with opacity)"
	}
	return name, true
}

func (c *Colour) achromatic() bool {
	return c.rgba.R == c.rgba.G && c.rgba.G == c.rgba.B
}

// setRGBA stores a new canonical value, keeping the carried hue when the
// result has none of its own.
func (c *Colour) setRGBA(rgba RGBA) *Colour {
	c.rgba = rgba.ToRGBA()
	hsl := RGBToHSL(c.rgba)
	if !c.achromatic() {
		c.hue = hsl.H
	}
	c.sat = hsl.S
	return c
}

// setHSLA stores an HSL value and remembers its hue and saturation.
func (c *Colour) setHSLA(hsl HSLA) *Colour {
	c.rgba = HSLToRGB(hsl)
	c.hue = AdjustHue(hsl.H)
	c.sat = clampPercent(hsl.S)
	return c
}
