package colour

import "math"

// Linear sRGB to CIE XYZ with a D65 white point.
// https://www.w3.org/TR/css-color-4/#color-conversion-code
var (
	srgbToXYZ = [3][3]float64{
		{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
		{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
		{0.01933081871559182, 0.11919477979462598, 0.9505321522496607},
	}
	xyzToSRGB = [3][3]float64{
		{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
		{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
		{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
	}
)

// Linear sRGB to CIE XYZ after Bradford adaptation to D50. Used by LUV and UVW.
// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
var (
	srgbToXYZD50 = [3][3]float64{
		{0.4360747, 0.3850649, 0.1430804},
		{0.2225045, 0.7168786, 0.0606169},
		{0.0139322, 0.0971045, 0.7141733},
	}
	xyzD50ToSRGB = [3][3]float64{
		{3.1338561, -1.6168667, -0.4906146},
		{-0.9787684, 1.9161415, 0.0334540},
		{0.0719453, -0.2289914, 1.4052427},
	}
)

// Reference whites on the percent scale.
var (
	whiteD65 = [3]float64{95.047, 100.0, 108.883}
	whiteD50 = [3]float64{96.422, 100.0, 82.521}
)

// LAB piecewise function constants.
const (
	labEpsilon = 0.008856
	labSlope   = 7.787
	labOffset  = 16.0 / 116.0
)

// LUV piecewise function constants, (6/29)^3 and (29/3)^3.
const (
	luvEpsilon = 216.0 / 24389.0
	luvKappa   = 24389.0 / 27.0
)

// RGBToXYZ converts RGB to CIE XYZ (D65, percent scale).
func RGBToXYZ(c RGBA) XYZA {
	xyz := linearToXYZ(srgbToXYZ, c)
	return XYZA{X: xyz[0], Y: xyz[1], Z: xyz[2], A: c.A}
}

// XYZToRGB converts CIE XYZ (D65, percent scale) to RGB.
func XYZToRGB(c XYZA) RGBA {
	return xyzToRGB(xyzToSRGB, [3]float64{c.X, c.Y, c.Z}, c.A)
}

// XYZToLAB converts CIE XYZ to CIE LAB using the D65 reference white.
func XYZToLAB(c XYZA) LABA {
	xr := c.X / whiteD65[0]
	yr := c.Y / whiteD65[1]
	zr := c.Z / whiteD65[2]

	fx, fy, fz := labF(xr), labF(yr), labF(zr)

	// The linear branch is written out so that black is exactly zero.
	l := 116 * labSlope * yr
	if yr > labEpsilon {
		l = 116*fy - 16
	}

	return LABA{
		L:     l,
		A:     500 * (fx - fy),
		B:     200 * (fy - fz),
		Alpha: c.A,
	}
}

// LABToXYZ converts CIE LAB to CIE XYZ using the D65 reference white.
func LABToXYZ(c LABA) XYZA {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	return XYZA{
		X: labFInv(fx) * whiteD65[0],
		Y: labFInv(fy) * whiteD65[1],
		Z: labFInv(fz) * whiteD65[2],
		A: c.Alpha,
	}
}

// RGBToLAB converts RGB to CIE LAB.
func RGBToLAB(c RGBA) LABA {
	return XYZToLAB(RGBToXYZ(c))
}

// LABToRGB converts CIE LAB to RGB.
func LABToRGB(c LABA) RGBA {
	return XYZToRGB(LABToXYZ(c))
}

// LABToLCH converts the a*, b* plane of LAB to polar chroma and hue.
func LABToLCH(c LABA) LCHA {
	var h float64
	if c.A != 0 || c.B != 0 {
		h = AdjustHue(math.Atan2(c.B, c.A) * 180 / math.Pi)
	}
	return LCHA{
		L: c.L,
		C: math.Hypot(c.A, c.B),
		H: h,
		A: c.Alpha,
	}
}

// LCHToLAB converts polar chroma and hue back to the a*, b* plane.
func LCHToLAB(c LCHA) LABA {
	chroma := math.Max(0, c.C)
	rad := AdjustHue(c.H) * math.Pi / 180
	return LABA{
		L:     c.L,
		A:     chroma * math.Cos(rad),
		B:     chroma * math.Sin(rad),
		Alpha: c.A,
	}
}

// RGBToLCH converts RGB to CIE LCH.
func RGBToLCH(c RGBA) LCHA {
	return LABToLCH(RGBToLAB(c))
}

// LCHToRGB converts CIE LCH to RGB.
func LCHToRGB(c LCHA) RGBA {
	return LABToRGB(LCHToLAB(c))
}

// RGBToLUV converts RGB to CIE 1976 LUV.
// The XYZ intermediate uses sRGB primaries adapted to D50 and the D50 white.
// http://www.brucelindbloom.com/index.html?Eqn_XYZ_to_Luv.html
func RGBToLUV(c RGBA) LUVA {
	xyz := linearToXYZ(srgbToXYZD50, c)
	x, y, z := xyz[0], xyz[1], xyz[2]

	yr := y / whiteD50[1]
	l := luvKappa * yr
	if yr > luvEpsilon {
		l = 116*math.Cbrt(yr) - 16
	}

	denom := x + 15*y + 3*z
	if denom == 0 || l == 0 {
		return LUVA{A: c.A}
	}

	un, vn := luvWhite()
	up := 4 * x / denom
	vp := 9 * y / denom

	return LUVA{
		L: l,
		U: 13 * l * (up - un),
		V: 13 * l * (vp - vn),
		A: c.A,
	}
}

// LUVToRGB converts CIE 1976 LUV to RGB.
// http://www.brucelindbloom.com/index.html?Eqn_Luv_to_XYZ.html
func LUVToRGB(c LUVA) RGBA {
	if c.L <= 0 {
		return RGBA{A: c.A}.ToRGBA()
	}

	un, vn := luvWhite()
	up := c.U/(13*c.L) + un
	vp := c.V/(13*c.L) + vn

	y := c.L / luvKappa
	if c.L > luvKappa*luvEpsilon {
		y = math.Pow((c.L+16)/116, 3)
	}
	y *= whiteD50[1]

	if vp == 0 {
		return xyzToRGB(xyzD50ToSRGB, [3]float64{0, y, 0}, c.A)
	}

	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)

	return xyzToRGB(xyzD50ToSRGB, [3]float64{x, y, z}, c.A)
}

// XYZToUVW converts CIE XYZ to the CIE 1960 UVW linear space.
func XYZToUVW(c XYZA) UVWA {
	return UVWA{
		U: 2 * c.X / 3,
		V: c.Y,
		W: (-c.X + 3*c.Y + c.Z) / 2,
		A: c.A,
	}
}

// UVWToXYZ inverts XYZToUVW.
func UVWToXYZ(c UVWA) XYZA {
	x := 1.5 * c.U
	return XYZA{
		X: x,
		Y: c.V,
		Z: 2*c.W + x - 3*c.V,
		A: c.A,
	}
}

// RGBToUVW converts RGB to CIE UVW over the D50-adapted XYZ shared with LUV.
func RGBToUVW(c RGBA) UVWA {
	xyz := linearToXYZ(srgbToXYZD50, c)
	return XYZToUVW(XYZA{X: xyz[0], Y: xyz[1], Z: xyz[2], A: c.A})
}

// UVWToRGB converts CIE UVW to RGB.
func UVWToRGB(c UVWA) RGBA {
	xyz := UVWToXYZ(c)
	return xyzToRGB(xyzD50ToSRGB, [3]float64{xyz.X, xyz.Y, xyz.Z}, c.A)
}

// linearToXYZ decodes the gamma of c and applies the RGB to XYZ matrix m.
func linearToXYZ(m [3][3]float64, c RGBA) [3]float64 {
	r, g, b := c.normalised()
	xyz := MultiplyMatrix(m, [3]float64{SRGBInv(r), SRGBInv(g), SRGBInv(b)})
	return [3]float64{xyz[0] * maxPercent, xyz[1] * maxPercent, xyz[2] * maxPercent}
}

// xyzToRGB applies the XYZ to RGB matrix m and re-encodes the gamma.
// Linear values are clamped first so that small negative artefacts never
// reach the power curve.
func xyzToRGB(m [3][3]float64, xyz [3]float64, alpha float64) RGBA {
	lin := MultiplyMatrix(m, [3]float64{xyz[0] / maxPercent, xyz[1] / maxPercent, xyz[2] / maxPercent})
	return rgbFromUnit(
		SRGB(Clamp(0, lin[0], 1)),
		SRGB(Clamp(0, lin[1], 1)),
		SRGB(Clamp(0, lin[2], 1)),
		alpha,
	)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labSlope*t + labOffset
}

func labFInv(t float64) float64 {
	if cube := t * t * t; cube > labEpsilon {
		return cube
	}
	return (t - labOffset) / labSlope
}

// luvWhite returns u' and v' of the D50 reference white.
func luvWhite() (un, vn float64) {
	x, y, z := whiteD50[0], whiteD50[1], whiteD50[2]
	denom := x + 15*y + 3*z
	return 4 * x / denom, 9 * y / denom
}
