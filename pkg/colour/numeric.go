// Package colour converts, parses, adjusts and renders colours across the
// RGB, HEX, HSL, HSV, HWB, CMYK, XYZ, LAB, LCH, LUV, UVW and RYB spaces.
//
// Every colour is held as a canonical RGBA value and every other space is
// computed from it on demand.
package colour

import (
	"math"
	"math/rand"
)

// Channel bounds of the canonical colour.
const (
	maxChannel = 255.0
	maxPercent = 100.0
	maxHue     = 360.0
)

// Clamp restricts val to the range [minVal, maxVal].
// A NaN value resolves to minVal so the result is always inside the range.
func Clamp(minVal, val, maxVal float64) float64 {
	if math.IsNaN(val) {
		return minVal
	}
	return math.Max(minVal, math.Min(val, maxVal))
}

// Round rounds value to precision decimal places.
// A negative precision returns value unchanged.
func Round(value float64, precision int) float64 {
	if precision < 0 {
		return value
	}
	p := math.Pow(10, float64(precision))
	return math.Round(value*p) / p
}

// AdjustHue maps any angle onto the hue circle [0, 360).
// Negative angles wrap around: -232 becomes 128.
func AdjustHue(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	h := math.Mod(math.Mod(value, maxHue)+maxHue, maxHue)
	if h == 0 {
		return 0 // drop negative zero
	}
	return h
}

// AdjustAlpha returns a valid alpha channel value in [0, 1].
// NaN stands in for an absent alpha and resolves to fully opaque.
func AdjustAlpha(alpha float64) float64 {
	if math.IsNaN(alpha) {
		return 1
	}
	return Clamp(0, alpha, 1)
}

// SRGB gamma-encodes a linear light value in [0, 1].
func SRGB(value float64) float64 {
	if value <= 0.0031308 {
		return 12.92 * value
	}
	return 1.055*math.Pow(value, 1/2.4) - 0.055
}

// SRGBInv decodes a gamma-encoded sRGB value in [0, 1] to linear light.
func SRGBInv(value float64) float64 {
	if value <= 0.04045 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}

// RNG returns a uniformly distributed integer in [0, maxVal].
func RNG(maxVal int) int {
	if maxVal <= 0 {
		return 0
	}
	return rand.Intn(maxVal + 1) //nolint:gosec // not used for security
}

// MultiplyMatrix multiplies the 3x3 matrix m by the column vector v.
func MultiplyMatrix(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i, row := range m {
		out[i] = row[0]*v[0] + row[1]*v[1] + row[2]*v[2]
	}
	return out
}

// ChannelWiseDifference returns the sum of absolute differences between the
// red, green and blue channels of two colours. Alpha is ignored.
func ChannelWiseDifference(a, b RGBA) float64 {
	return math.Abs(a.R-b.R) + math.Abs(a.G-b.G) + math.Abs(a.B-b.B)
}
