package colour

import (
	"fmt"
	"strings"
)

// InputKind discriminates the shapes an Input can take.
type InputKind int

// Input shapes.
const (
	KindUnknown   InputKind = iota
	KindFields              // named numeric channels, e.g. {"h": 120, "s": 50, "l": 50}
	KindHexFields           // named hexadecimal channels, e.g. {"r": "ff", "g": "00", "b": "00"}
	KindNumbers             // positional numeric channels
	KindStrings             // positional textual channels
	KindText                // CSS-like notation, e.g. "hsla(120, 50%, 50%, 0.5)"
)

var kindNames = [...]string{"unknown", "fields", "hex-fields", "numbers", "strings", "text"}

func (k InputKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
	return kindNames[k]
}

// Input is an unparsed colour value. Only the field matching Kind is read.
//
// Hint optionally names the format the value is written in. A hinted input
// is only offered to parsers of that format, which also lets bare values such
// as "120, 50, 50" be read as something other than RGB.
type Input struct {
	Kind      InputKind
	Fields    map[string]float64
	HexFields map[string]string
	Numbers   []float64
	Strings   []string
	Text      string
	Hint      Format
}

// FieldsInput wraps named numeric channels. A missing alpha means opaque.
func FieldsInput(fields map[string]float64) Input {
	return Input{Kind: KindFields, Fields: fields}
}

// HexFieldsInput wraps named hexadecimal channels.
func HexFieldsInput(fields map[string]string) Input {
	return Input{Kind: KindHexFields, HexFields: fields}
}

// NumbersInput wraps positional channels; a fourth value (fifth for CMYK) is alpha.
func NumbersInput(values ...float64) Input {
	return Input{Kind: KindNumbers, Numbers: values}
}

// StringsInput wraps positional textual channels.
// Without a hint they are read as hexadecimal.
func StringsInput(values ...string) Input {
	return Input{Kind: KindStrings, Strings: values}
}

// TextInput wraps a textual colour such as "#ff0000", "rgb(255, 0, 0)" or "red".
func TextInput(text string) Input {
	return Input{Kind: KindText, Text: text}
}

// As returns a copy of in hinted with format f.
func (in Input) As(f Format) Input {
	in.Hint = f
	return in
}

// hinted reports whether in may be read by a parser of format f.
func (in Input) hinted(f Format) bool {
	return in.Hint == FormatInvalid || in.Hint == f
}

// String describes the input for log and error messages.
func (in Input) String() string {
	var v string
	switch in.Kind {
	case KindFields:
		v = fmt.Sprint(in.Fields)
	case KindHexFields:
		v = fmt.Sprint(in.HexFields)
	case KindNumbers:
		v = fmt.Sprint(in.Numbers)
	case KindStrings:
		v = "[" + strings.Join(in.Strings, " ") + "]"
	case KindText:
		v = fmt.Sprintf("%q", in.Text)
	default:
		v = "<empty>"
	}
	if in.Hint != FormatInvalid {
		return in.Hint.String() + ":" + v
	}
	return v
}
