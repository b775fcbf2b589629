package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a format name or conversion target is not
// a colour space.
var ErrUnknownFormat = errors.New("unknown colour format")

// Format identifies the notation a colour was read from.
// It only affects default rendering; all arithmetic happens in RGB.
type Format int

// Supported formats. FormatInvalid marks input that no parser recognised.
const (
	FormatInvalid Format = iota
	FormatRGB
	FormatHEX
	FormatHSL
	FormatHSV
	FormatHWB
	FormatCMYK
	FormatXYZ
	FormatLAB
	FormatLCH
	FormatLUV
	FormatUVW
	FormatRYB
	FormatName
)

var formatNames = [...]string{
	FormatInvalid: "invalid",
	FormatRGB:     "rgb",
	FormatHEX:     "hex",
	FormatHSL:     "hsl",
	FormatHSV:     "hsv",
	FormatHWB:     "hwb",
	FormatCMYK:    "cmyk",
	FormatXYZ:     "xyz",
	FormatLAB:     "lab",
	FormatLCH:     "lch",
	FormatLUV:     "luv",
	FormatUVW:     "uvw",
	FormatRYB:     "ryb",
	FormatName:    "name",
}

// Formats returns every colour space format, excluding FormatInvalid.
func Formats() []Format {
	out := make([]Format, 0, len(formatNames)-1)
	for f := FormatRGB; f <= FormatName; f++ {
		out = append(out, f)
	}
	return out
}

// String returns the lower-case name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFormat returns the format with the given name.
// Names are case-insensitive and "hexa", "rgba" style alpha suffixes are accepted.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, s := range formatNames {
		if Format(f) == FormatInvalid {
			continue
		}
		if n == s || n == s+"a" {
			return Format(f), nil
		}
	}
	return FormatInvalid, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
