package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBToHEX converts RGB to two digit hexadecimal channels.
// Channels are rounded to the nearest integer; alpha is scaled by 255 first,
// so it survives a round trip only to 1/255 granularity.
func RGBToHEX(c RGBA) HEXA {
	c = c.ToRGBA()
	return HEXA{
		R: hexByte(c.R),
		G: hexByte(c.G),
		B: hexByte(c.B),
		A: hexByte(c.A * maxChannel),
	}
}

// HEXToRGB converts hexadecimal channels to RGB.
// Single digit channels are shorthand and are doubled ("f" is "ff").
// An empty alpha is opaque; any other unreadable channel reads as zero.
func HEXToRGB(c HEXA) RGBA {
	r, _ := parseHexByte(c.R)
	g, _ := parseHexByte(c.G)
	b, _ := parseHexByte(c.B)

	a := 1.0
	if c.A != "" {
		if v, ok := parseHexByte(c.A); ok {
			a = v / maxChannel
		}
	}

	return RGBA{R: r, G: g, B: b, A: a}.ToRGBA()
}

// String returns the record as "#rrggbbaa".
func (c HEXA) String() string {
	return "#" + c.R + c.G + c.B + c.A
}

func hexByte(v float64) string {
	return fmt.Sprintf("%02x", int(math.Round(Clamp(0, v, maxChannel))))
}

// parseHexByte reads a one or two digit hexadecimal channel.
func parseHexByte(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		s += s
	}
	if len(s) != 2 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return float64(v), true
}

// splitHex splits a run of 3, 4, 6 or 8 hex digits into channels.
func splitHex(digits string) (HEXA, bool) {
	var parts []string
	switch len(digits) {
	case 3, 4:
		for i := 0; i < len(digits); i++ {
			parts = append(parts, digits[i:i+1])
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			parts = append(parts, digits[i:i+2])
		}
	default:
		return HEXA{}, false
	}
	for _, p := range parts {
		if _, ok := parseHexByte(p); !ok {
			return HEXA{}, false
		}
	}

	h := HEXA{R: parts[0], G: parts[1], B: parts[2]}
	if len(parts) == 4 {
		h.A = parts[3]
	}
	return h, true
}
