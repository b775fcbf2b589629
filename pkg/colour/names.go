package colour

import (
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Named is a colour read from its CSS/SVG name.
type Named struct {
	Name  string `json:"name"`
	Value RGBA   `json:"rgba"`
}

func (n Named) Format() Format { return FormatName }
func (n Named) ToRGBA() RGBA   { return n.Value.ToRGBA() }

// nameParser reads the SVG 1.1 colour keywords plus "transparent".
type nameParser struct{}

// NameParser returns the parser for colour names such as "maroon" or
// "Light Sea Green". Matching ignores case and whitespace.
func NameParser() Parser {
	return nameParser{}
}

func (nameParser) Format() Format {
	return FormatName
}

func (nameParser) Parse(in Input) (Space, bool) {
	if in.Kind != KindText || !in.hinted(FormatName) {
		return nil, false
	}
	return LookupName(in.Text)
}

// LookupName returns the colour with the given CSS name.
func LookupName(name string) (Named, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(name), ""))
	if key == "" {
		return Named{}, false
	}
	if key == "transparent" {
		return Named{Name: key, Value: RGBA{}}, true
	}

	c, ok := colornames.Map[key]
	if !ok {
		return Named{}, false
	}
	return Named{
		Name:  key,
		Value: RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A) / maxChannel},
	}, true
}

// nameOf returns the first name, alphabetically, of the colour whose 8-bit
// channels equal c's.
func nameOf(c RGBA) (string, bool) {
	r, g, b := math.Round(c.R), math.Round(c.G), math.Round(c.B)
	for _, name := range colornames.Names {
		v := colornames.Map[name]
		if float64(v.R) == r && float64(v.G) == g && float64(v.B) == b {
			return name, true
		}
	}
	return "", false
}
