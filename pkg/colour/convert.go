package colour

import "fmt"

// fromRGB holds the RGB to <space> edge of every convertible format.
var fromRGB = map[Format]func(RGBA) Space{
	FormatRGB:  func(c RGBA) Space { return c },
	FormatHEX:  func(c RGBA) Space { return RGBToHEX(c) },
	FormatHSL:  func(c RGBA) Space { return RGBToHSL(c) },
	FormatHSV:  func(c RGBA) Space { return RGBToHSV(c) },
	FormatHWB:  func(c RGBA) Space { return RGBToHWB(c) },
	FormatCMYK: func(c RGBA) Space { return RGBToCMYK(c) },
	FormatXYZ:  func(c RGBA) Space { return RGBToXYZ(c) },
	FormatLAB:  func(c RGBA) Space { return RGBToLAB(c) },
	FormatLCH:  func(c RGBA) Space { return RGBToLCH(c) },
	FormatLUV:  func(c RGBA) Space { return RGBToLUV(c) },
	FormatUVW:  func(c RGBA) Space { return RGBToUVW(c) },
	FormatRYB:  func(c RGBA) Space { return RGBToRYB(c) },
}

// Convert converts s into the colour space identified by to.
// Every conversion pivots through canonical RGB. Converting to
// FormatInvalid or FormatName returns ErrUnknownFormat.
func Convert(s Space, to Format) (Space, error) {
	if s == nil {
		return nil, fmt.Errorf("convert to %s: nil colour", to)
	}
	conv, ok := fromRGB[to]
	if !ok {
		return nil, fmt.Errorf("convert %s to %s: %w", s.Format(), to, ErrUnknownFormat)
	}
	return conv(s.ToRGBA()), nil
}
