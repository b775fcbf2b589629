package colour

import (
	"strconv"
	"strings"
)

// StringOption configures how a colour is rendered.
type StringOption func(*stringOptions)

type stringOptions struct {
	alpha     bool
	precision []int
}

// WithAlpha selects whether the alpha channel is rendered. It is on by default.
func WithAlpha(include bool) StringOption {
	return func(o *stringOptions) {
		o.alpha = include
	}
}

// WithPrecision sets the decimal places of each channel in order, alpha last.
// Missing entries keep their defaults and a negative entry disables rounding.
func WithPrecision(precision ...int) StringOption {
	return func(o *stringOptions) {
		o.precision = precision
	}
}

// notation describes the textual form of one colour space.
type notation struct {
	name     string
	generic  bool // written as color(<name> ...)
	units    []string
	defaults []int // per channel, alpha last
}

var (
	defaultPrecision     = []int{0, 0, 0, 1}
	defaultCMYKPrecision = []int{0, 0, 0, 0, 1}

	rgbNotation  = notation{name: "rgb", units: []string{"", "", ""}, defaults: defaultPrecision}
	hslNotation  = notation{name: "hsl", units: []string{"", "%", "%"}, defaults: defaultPrecision}
	hsvNotation  = notation{name: "hsv", units: []string{"", "%", "%"}, defaults: defaultPrecision}
	hwbNotation  = notation{name: "hwb", units: []string{"", "%", "%"}, defaults: defaultPrecision}
	cmykNotation = notation{name: "cmyk", units: []string{"", "", "", ""}, defaults: defaultCMYKPrecision}
	labNotation  = notation{name: "lab", units: []string{"%", "", ""}, defaults: defaultPrecision}
	lchNotation  = notation{name: "lch", units: []string{"%", "", ""}, defaults: defaultPrecision}
	xyzNotation  = notation{name: "xyz", generic: true, units: []string{"", "", ""}, defaults: defaultPrecision}
	luvNotation  = notation{name: "luv", generic: true, units: []string{"%", "%", "%"}, defaults: defaultPrecision}
	uvwNotation  = notation{name: "uvw", generic: true, units: []string{"", "", ""}, defaults: defaultPrecision}
	rybNotation  = notation{name: "ryb", generic: true, units: []string{"", "", ""}, defaults: defaultPrecision}
)

func (n notation) render(channels []float64, alpha float64, opts []StringOption) string {
	o := stringOptions{alpha: true}
	for _, opt := range opts {
		opt(&o)
	}
	precision := func(i int) int {
		if i < len(o.precision) {
			return o.precision[i]
		}
		return n.defaults[i]
	}

	parts := make([]string, 0, len(channels)+1)
	for i, v := range channels {
		parts = append(parts, formatChannel(v, precision(i))+n.units[i])
	}

	name := n.name
	if o.alpha {
		name += "a"
		parts = append(parts, formatAlpha(alpha, precision(len(channels))))
	}

	var sb strings.Builder
	if n.generic {
		sb.WriteString("color(")
		sb.WriteString(name)
		sb.WriteByte(' ')
	} else {
		sb.WriteString(name)
		sb.WriteByte('(')
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteByte(')')
	return sb.String()
}

func formatChannel(v float64, precision int) string {
	v = Round(v, precision)
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatAlpha keeps trailing zeros so opaque renders as "1.0".
func formatAlpha(a float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(a, 'f', -1, 64)
	}
	return strconv.FormatFloat(Round(a, precision), 'f', precision, 64)
}

// String renders the colour in the notation it was read from.
// Named and invalid colours render as hex and rgb respectively.
func (c *Colour) String() string {
	return c.StringAs(c.format)
}

// StringAs renders the colour in the notation of format f.
func (c *Colour) StringAs(f Format, opts ...StringOption) string {
	switch f {
	case FormatHEX, FormatName:
		return c.StringHEX(opts...)
	case FormatHSL:
		return c.StringHSL(opts...)
	case FormatHSV:
		return c.StringHSV(opts...)
	case FormatHWB:
		return c.StringHWB(opts...)
	case FormatCMYK:
		return c.StringCMYK(opts...)
	case FormatXYZ:
		return c.StringXYZ(opts...)
	case FormatLAB:
		return c.StringLAB(opts...)
	case FormatLCH:
		return c.StringLCH(opts...)
	case FormatLUV:
		return c.StringLUV(opts...)
	case FormatUVW:
		return c.StringUVW(opts...)
	case FormatRYB:
		return c.StringRYB(opts...)
	default:
		return c.StringRGB(opts...)
	}
}

// StringRGB renders "rgba(R, G, B, A)".
func (c *Colour) StringRGB(opts ...StringOption) string {
	v := c.rgba
	return rgbNotation.render([]float64{v.R, v.G, v.B}, v.A, opts)
}

// StringHEX renders "#rrggbbaa", or "#rrggbb" without alpha.
// Precision options do not apply.
func (c *Colour) StringHEX(opts ...StringOption) string {
	o := stringOptions{alpha: true}
	for _, opt := range opts {
		opt(&o)
	}
	h := c.HEXA()
	if !o.alpha {
		h.A = ""
	}
	return h.String()
}

// StringHSL renders "hsla(H, S%, L%, A)".
func (c *Colour) StringHSL(opts ...StringOption) string {
	v := c.HSLA()
	return hslNotation.render([]float64{v.H, v.S, v.L}, v.A, opts)
}

// StringHSV renders "hsva(H, S%, V%, A)".
func (c *Colour) StringHSV(opts ...StringOption) string {
	v := c.HSVA()
	return hsvNotation.render([]float64{v.H, v.S, v.V}, v.A, opts)
}

// StringHWB renders "hwba(H, W%, B%, A)".
func (c *Colour) StringHWB(opts ...StringOption) string {
	v := c.HWBA()
	return hwbNotation.render([]float64{v.H, v.W, v.B}, v.A, opts)
}

// StringCMYK renders "cmyka(C, M, Y, K, A)".
func (c *Colour) StringCMYK(opts ...StringOption) string {
	v := c.CMYKA()
	return cmykNotation.render([]float64{v.C, v.M, v.Y, v.K}, v.A, opts)
}

// StringXYZ renders "color(xyza X, Y, Z, A)".
func (c *Colour) StringXYZ(opts ...StringOption) string {
	v := c.XYZA()
	return xyzNotation.render([]float64{v.X, v.Y, v.Z}, v.A, opts)
}

// StringLAB renders "laba(L%, A, B, alpha)".
func (c *Colour) StringLAB(opts ...StringOption) string {
	v := c.LABA()
	return labNotation.render([]float64{v.L, v.A, v.B}, v.Alpha, opts)
}

// StringLCH renders "lcha(L%, C, H, A)".
func (c *Colour) StringLCH(opts ...StringOption) string {
	v := c.LCHA()
	return lchNotation.render([]float64{v.L, v.C, v.H}, v.A, opts)
}

// StringLUV renders "color(luva L%, U%, V%, A)".
func (c *Colour) StringLUV(opts ...StringOption) string {
	v := c.LUVA()
	return luvNotation.render([]float64{v.L, v.U, v.V}, v.A, opts)
}

// StringUVW renders "color(uvwa U, V, W, A)".
func (c *Colour) StringUVW(opts ...StringOption) string {
	v := c.UVWA()
	return uvwNotation.render([]float64{v.U, v.V, v.W}, v.A, opts)
}

// StringRYB renders "color(ryba R, Y, B, A)".
func (c *Colour) StringRYB(opts ...StringOption) string {
	v := c.RYBA()
	return rybNotation.render([]float64{v.R, v.Y, v.B}, v.A, opts)
}
