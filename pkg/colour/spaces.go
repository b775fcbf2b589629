package colour

// Space is a colour value in one particular colour space.
type Space interface {
	// Format reports the colour space of the value.
	Format() Format
	// ToRGBA converts the value to canonical, clamped RGBA.
	ToRGBA() RGBA
}

// RGBA is the canonical colour record.
// R, G and B are real-valued in [0, 255]; A is in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// HSLA is hue in degrees, saturation and lightness in percent.
type HSLA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

// HEXA holds each channel as a two digit hexadecimal string.
type HEXA struct {
	R string `json:"r"`
	G string `json:"g"`
	B string `json:"b"`
	A string `json:"a"`
}

// HSVA is hue in degrees, saturation and value in percent.
type HSVA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
	A float64 `json:"a"`
}

// HWBA is hue in degrees, whiteness and blackness in percent.
type HWBA struct {
	H float64 `json:"h"`
	W float64 `json:"w"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// CMYKA holds naive, uncalibrated ink coverage in percent.
type CMYKA struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
	A float64 `json:"a"`
}

// XYZA is CIE 1931 XYZ relative to D65, scaled so white has Y = 100.
type XYZA struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	A float64 `json:"a"`
}

// LABA is CIE 1976 L*a*b* relative to D65.
type LABA struct {
	L     float64 `json:"l"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Alpha float64 `json:"alpha"`
}

// LCHA is the cylindrical form of LABA with hue in degrees.
type LCHA struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
	A float64 `json:"a"`
}

// LUVA is CIE 1976 L*u*v* relative to D50.
type LUVA struct {
	L float64 `json:"l"`
	U float64 `json:"u"`
	V float64 `json:"v"`
	A float64 `json:"a"`
}

// UVWA is the CIE 1960 UVW linear transform of XYZ.
// It is unrelated to LUVA despite the similar channel names.
type UVWA struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
	W float64 `json:"w"`
	A float64 `json:"a"`
}

// RYBA is red, yellow, blue pigment amounts in [0, 255].
type RYBA struct {
	R float64 `json:"r"`
	Y float64 `json:"y"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

func (c RGBA) Format() Format  { return FormatRGB }
func (c HSLA) Format() Format  { return FormatHSL }
func (c HEXA) Format() Format  { return FormatHEX }
func (c HSVA) Format() Format  { return FormatHSV }
func (c HWBA) Format() Format  { return FormatHWB }
func (c CMYKA) Format() Format { return FormatCMYK }
func (c XYZA) Format() Format  { return FormatXYZ }
func (c LABA) Format() Format  { return FormatLAB }
func (c LCHA) Format() Format  { return FormatLCH }
func (c LUVA) Format() Format  { return FormatLUV }
func (c UVWA) Format() Format  { return FormatUVW }
func (c RYBA) Format() Format  { return FormatRYB }

// ToRGBA clamps the record into canonical bounds.
func (c RGBA) ToRGBA() RGBA {
	return RGBA{
		R: Clamp(0, c.R, maxChannel),
		G: Clamp(0, c.G, maxChannel),
		B: Clamp(0, c.B, maxChannel),
		A: AdjustAlpha(c.A),
	}
}

func (c HSLA) ToRGBA() RGBA  { return HSLToRGB(c) }
func (c HEXA) ToRGBA() RGBA  { return HEXToRGB(c) }
func (c HSVA) ToRGBA() RGBA  { return HSVToRGB(c) }
func (c HWBA) ToRGBA() RGBA  { return HWBToRGB(c) }
func (c CMYKA) ToRGBA() RGBA { return CMYKToRGB(c) }
func (c XYZA) ToRGBA() RGBA  { return XYZToRGB(c) }
func (c LABA) ToRGBA() RGBA  { return LABToRGB(c) }
func (c LCHA) ToRGBA() RGBA  { return LCHToRGB(c) }
func (c LUVA) ToRGBA() RGBA  { return LUVToRGB(c) }
func (c UVWA) ToRGBA() RGBA  { return UVWToRGB(c) }
func (c RYBA) ToRGBA() RGBA  { return RYBToRGB(c) }

// normalised returns the channels scaled to [0, 1].
func (c RGBA) normalised() (r, g, b float64) {
	return c.R / maxChannel, c.G / maxChannel, c.B / maxChannel
}

// rgbFromUnit scales [0, 1] channels to a clamped canonical colour.
func rgbFromUnit(r, g, b, a float64) RGBA {
	return RGBA{R: r * maxChannel, G: g * maxChannel, B: b * maxChannel, A: a}.ToRGBA()
}
