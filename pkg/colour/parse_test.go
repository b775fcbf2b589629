package colour

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		format Format
		want   RGBA
	}{
		{name: "rgb", text: "rgb(255, 0, 0)", format: FormatRGB, want: RGBA{255, 0, 0, 1}},
		{name: "rgba slash", text: "rgba(255 128 0 / 0.5)", format: FormatRGB, want: RGBA{255, 128, 0, 0.5}},
		{name: "percent alpha", text: "rgb(255 0 0 / 50%)", format: FormatRGB, want: RGBA{255, 0, 0, 0.5}},
		{name: "hsla percent alpha", text: "hsla(240, 100%, 50%, 25%)", format: FormatHSL, want: RGBA{0, 0, 255, 0.25}},
		{name: "rgb upper case", text: "  RGB(0, 0, 255)  ", format: FormatRGB, want: RGBA{0, 0, 255, 1}},
		{name: "bare values are rgb", text: "10, 20, 30", format: FormatRGB, want: RGBA{10, 20, 30, 1}},
		{name: "clamped", text: "rgb(300, -5, 0, 2)", format: FormatRGB, want: RGBA{255, 0, 0, 1}},
		{name: "extra values ignored", text: "rgba(1, 2, 3, 0.5, 0.9)", format: FormatRGB, want: RGBA{1, 2, 3, 0.5}},
		{name: "hex", text: "#ff0000", format: FormatHEX, want: RGBA{255, 0, 0, 1}},
		{name: "hex shorthand", text: "#0f0", format: FormatHEX, want: RGBA{0, 255, 0, 1}},
		{name: "hex upper case", text: "#00FF00", format: FormatHEX, want: RGBA{0, 255, 0, 1}},
		{name: "hex alpha", text: "#0000ff00", format: FormatHEX, want: RGBA{0, 0, 255, 0}},
		{name: "hex prefix", text: "hex(ff, 00, ff)", format: FormatHEX, want: RGBA{255, 0, 255, 1}},
		{name: "hsl", text: "hsl(120, 100%, 50%)", format: FormatHSL, want: RGBA{0, 255, 0, 1}},
		{name: "hsla", text: "hsla(240, 100%, 50%, 0.25)", format: FormatHSL, want: RGBA{0, 0, 255, 0.25}},
		{name: "hsv", text: "hsv(0, 100%, 100%)", format: FormatHSV, want: RGBA{255, 0, 0, 1}},
		{name: "hwb", text: "hwb(0, 0%, 100%)", format: FormatHWB, want: RGBA{0, 0, 0, 1}},
		{name: "cmyk", text: "device-cmyk(0, 100, 100, 0)", format: FormatCMYK, want: RGBA{255, 0, 0, 1}},
		{name: "cmyka", text: "cmyka(0, 0, 0, 100, 0.5)", format: FormatCMYK, want: RGBA{0, 0, 0, 0.5}},
		{name: "lab", text: "lab(53.2408%, 80.0925, 67.2032)", format: FormatLAB, want: RGBA{255, 0, 0, 1}},
		{name: "lch", text: "lch(100%, 0, 0)", format: FormatLCH, want: RGBA{255, 255, 255, 1}},
		{name: "luv", text: "color(luv 54.29054294696968%, 175.04931972712927, 25.958396703979968)", format: FormatLUV, want: RGBA{255, 0, 0, 1}},
		{name: "xyz", text: "color(xyza 0, 0, 0, 0.5)", format: FormatXYZ, want: RGBA{0, 0, 0, 0.5}},
		{name: "uvw", text: "color(uvw 0, 0, 0)", format: FormatUVW, want: RGBA{0, 0, 0, 1}},
		{name: "ryb", text: "color(ryb 255, 0, 0)", format: FormatRYB, want: RGBA{255, 0, 0, 1}},
		{name: "name", text: "red", format: FormatName, want: RGBA{255, 0, 0, 1}},
		{name: "spaced name", text: "Light Sea Green", format: FormatName, want: RGBA{32, 178, 170, 1}},
		{name: "transparent", text: "transparent", format: FormatName, want: RGBA{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.text, err)
			}
			if c.Format() != tt.format {
				t.Errorf("Parse(%q).Format() = %v, want %v", tt.text, c.Format(), tt.format)
			}
			if diff := cmp.Diff(tt.want, roundRGBA(c.RGBA())); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []Input{
		TextInput(""),
		TextInput("not a colour"),
		TextInput("#12345"),
		TextInput("rgb(1, 2)"),
		TextInput("hsl(120, 50%)"),
		TextInput("rgb(nan, 0, 0)"),
		NumbersInput(255, 0),
		FieldsInput(map[string]float64{"r": 1, "g": 2}),
		HexFieldsInput(map[string]string{"r": "zz", "g": "00", "b": "00"}),
		{},
	}

	for _, in := range inputs {
		t.Run(in.String(), func(t *testing.T) {
			c := New(in)
			if c.IsValid() {
				t.Fatalf("New(%v) = %v, want invalid", in, c)
			}
			if c.Format() != FormatInvalid {
				t.Errorf("Format() = %v, want invalid", c.Format())
			}
			if c.RGBA() != (RGBA{A: 1}) {
				t.Errorf("invalid colour = %v, want opaque black", c.RGBA())
			}
			if _, err := DefaultRegistry().ParseStrict(in); !errors.Is(err, ErrInvalidColour) {
				t.Errorf("ParseStrict() error = %v, want ErrInvalidColour", err)
			}
		})
	}
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		format Format
		want   RGBA
	}{
		{
			name:   "rgb fields",
			in:     FieldsInput(map[string]float64{"r": 255, "g": 128, "b": 0}),
			format: FormatRGB,
			want:   RGBA{255, 128, 0, 1},
		},
		{
			name:   "hsl fields with alpha",
			in:     FieldsInput(map[string]float64{"h": 128, "s": 50, "l": 60, "a": 5}),
			format: FormatHSL,
			want:   HSLToRGB(HSLA{128, 50, 60, 1}),
		},
		{
			name:   "hsv fields",
			in:     FieldsInput(map[string]float64{"h": 0, "s": 100, "v": 100}),
			format: FormatHSV,
			want:   RGBA{255, 0, 0, 1},
		},
		{
			name:   "hwb fields",
			in:     FieldsInput(map[string]float64{"h": 0, "w": 100, "b": 0}),
			format: FormatHWB,
			want:   RGBA{255, 255, 255, 1},
		},
		{
			name:   "cmyk fields",
			in:     FieldsInput(map[string]float64{"c": 0, "m": 0, "y": 0, "k": 0, "a": 0.5}),
			format: FormatCMYK,
			want:   RGBA{255, 255, 255, 0.5},
		},
		{
			name:   "lab fields use alpha key",
			in:     FieldsInput(map[string]float64{"l": 0, "a": 0, "b": 0, "alpha": 0.5}),
			format: FormatLAB,
			want:   RGBA{0, 0, 0, 0.5},
		},
		{
			name:   "luv fields",
			in:     FieldsInput(map[string]float64{"l": 0, "u": 0, "v": 0}),
			format: FormatLUV,
			want:   RGBA{0, 0, 0, 1},
		},
		{
			name:   "xyz fields",
			in:     FieldsInput(map[string]float64{"x": 0, "y": 0, "z": 0}),
			format: FormatXYZ,
			want:   RGBA{0, 0, 0, 1},
		},
		{
			name:   "ryb fields",
			in:     FieldsInput(map[string]float64{"r": 0, "y": 255, "b": 0}),
			format: FormatRYB,
			want:   RGBA{255, 255, 0, 1},
		},
		{
			name:   "hex fields",
			in:     HexFieldsInput(map[string]string{"r": "ff", "g": "8", "b": "00"}),
			format: FormatHEX,
			want:   RGBA{255, 136, 0, 1},
		},
		{
			name:   "hex strings",
			in:     StringsInput("ff", "00", "00", "80"),
			format: FormatHEX,
			want:   RGBA{255, 0, 0, 128.0 / 255},
		},
		{
			name:   "numbers are rgb",
			in:     NumbersInput(300, 0, 0, 0.5),
			format: FormatRGB,
			want:   RGBA{255, 0, 0, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.in)
			if c.Format() != tt.format {
				t.Fatalf("New(%v).Format() = %v, want %v", tt.in, c.Format(), tt.format)
			}
			if diff := cmp.Diff(roundRGBA(tt.want), roundRGBA(c.RGBA()), approx); diff != "" {
				t.Errorf("New(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseHints(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{name: "numbers as hsl", in: NumbersInput(128, 50, 60, 0.7).As(FormatHSL), want: "hsla(128, 50%, 60%, 0.7)"},
		{name: "bare text as hsl", in: TextInput("128, 50%, 60%").As(FormatHSL), want: "hsla(128, 50%, 60%, 1.0)"},
		{name: "parenthesised text as hsl", in: TextInput("(128, 50%, 60%, 0.7)").As(FormatHSL), want: "hsla(128, 50%, 60%, 0.7)"},
		{name: "strings as hsl", in: StringsInput("128", "50%", "60%").As(FormatHSL), want: "hsla(128, 50%, 60%, 1.0)"},
		{name: "hue wraps", in: NumbersInput(-232, 50, 60, 128).As(FormatHSL), want: "hsla(128, 50%, 60%, 1.0)"},
		{name: "bare hex", in: TextInput("ff8000").As(FormatHEX), want: "#ff8000ff"},
		{name: "cmyk numbers", in: NumbersInput(0, 0, 0, 100).As(FormatCMYK), want: "cmyka(0, 0, 0, 100, 1.0)"},
		{name: "name", in: TextInput("Navy").As(FormatName), want: "#000080ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.in)
			if !c.IsValid() {
				t.Fatalf("New(%v) is invalid", tt.in)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("New(%v).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if c := New(TextInput("rgb(255, 0, 0)").As(FormatHSL)); c.IsValid() {
		t.Errorf("hinted input was read by another format: %v", c.Format())
	}
	if c := New(StringsInput("10", "20", "30")); c.Format() != FormatHEX {
		t.Errorf("unhinted strings read as %v, want hex", c.Format())
	}
}

func TestRegistryOrder(t *testing.T) {
	in := NumbersInput(120, 100, 50)

	if got := New(in).Format(); got != FormatRGB {
		t.Fatalf("default registry read %v, want rgb", got)
	}

	r := NewRegistry(HSLParser(), RGBParser())
	c := r.Parse(in)
	if c.Format() != FormatHSL {
		t.Fatalf("custom registry read %v, want hsl", c.Format())
	}
	if want := (RGBA{0, 255, 0, 1}); roundRGBA(c.RGBA()) != want {
		t.Errorf("custom registry colour = %v, want %v", c.RGBA(), want)
	}

	text := TextInput("120, 100, 50")
	if got := r.Parse(text).Format(); got != FormatRGB {
		t.Errorf("unprefixed text read as %v, want rgb", got)
	}
	if got := NewRegistry(HSLParser()).Parse(text); got.IsValid() {
		t.Errorf("hsl parser read unhinted unprefixed text as %v", got.StringHSL())
	}
	if got := r.Parse(text.As(FormatHSL)).Format(); got != FormatHSL {
		t.Errorf("hinted text read as %v, want hsl", got)
	}

	empty := NewRegistry()
	if empty.Parse(in).IsValid() {
		t.Error("empty registry accepted input")
	}
	empty.Register(HWBParser())
	if got := empty.Parse(in).Format(); got != FormatHWB {
		t.Errorf("registered parser read %v, want hwb", got)
	}
	if n := len(empty.Parsers()); n != 1 {
		t.Errorf("Parsers() returned %d parsers, want 1", n)
	}
}

type greyParser struct{}

func (greyParser) Format() Format { return FormatRGB }

func (greyParser) Parse(in Input) (Space, bool) {
	if in.Kind != KindText || !strings.HasPrefix(in.Text, "grey ") {
		return nil, false
	}
	values, ok := parseNumbers(strings.Fields(strings.TrimPrefix(in.Text, "grey ")))
	if !ok || len(values) != 1 {
		return nil, false
	}
	v := values[0]
	return RGBA{R: v, G: v, B: v, A: 1}, true
}

func TestRegistryCustomParser(t *testing.T) {
	r := NewRegistry(DefaultParsers()...)
	r.Register(greyParser{})

	c := r.Parse(TextInput("grey 64"))
	if !c.IsValid() {
		t.Fatal("custom parser was not consulted")
	}
	if got := c.StringRGB(WithAlpha(false)); got != "rgb(64, 64, 64)" {
		t.Errorf("StringRGB() = %q", got)
	}
}

func TestRegistryLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "parse",
		Output: &buf,
		Level:  hclog.Trace,
	})

	r := NewRegistry(DefaultParsers()...).WithLogger(logger)
	r.Parse(TextInput("hsl(0, 100%, 50%)"))
	r.Parse(TextInput("nope"))

	out := buf.String()
	for _, want := range []string{"parser rejected input", "parser accepted input", "no parser accepted input"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

}

func TestRegistryWithLoggerCopies(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Trace})

	def := DefaultRegistry()
	logged := def.WithLogger(logger)
	if logged == def {
		t.Fatal("WithLogger returned the default registry itself")
	}

	DefaultRegistry().Parse(TextInput("red"))
	if buf.Len() != 0 {
		t.Errorf("default registry logged after WithLogger:\n%s", buf.String())
	}

	logged.Parse(TextInput("red"))
	if buf.Len() == 0 {
		t.Error("copy did not log")
	}

	logged.Register(greyParser{})
	if got, want := len(DefaultRegistry().Parsers()), len(DefaultParsers()); got != want {
		t.Errorf("default registry has %d parsers after registering on a copy, want %d", got, want)
	}

	if r := logged.WithLogger(nil); r == logged || r.logger == nil {
		t.Error("WithLogger(nil) should return a copy with a null logger")
	}
}

func TestLookupName(t *testing.T) {
	tests := []struct {
		name string
		want RGBA
		ok   bool
	}{
		{name: "maroon", want: RGBA{128, 0, 0, 1}, ok: true},
		{name: "MAROON", want: RGBA{128, 0, 0, 1}, ok: true},
		{name: "dark slate gray", want: RGBA{47, 79, 79, 1}, ok: true},
		{name: "transparent", want: RGBA{}, ok: true},
		{name: "unobtainium", ok: false},
		{name: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := LookupName(tt.name)
			if ok != tt.ok {
				t.Fatalf("LookupName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && n.ToRGBA() != tt.want {
				t.Errorf("LookupName(%q) = %v, want %v", tt.name, n.ToRGBA(), tt.want)
			}
		})
	}
}

func TestParseHexAlphaGranularity(t *testing.T) {
	c, err := Parse("#ff000080")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.Alpha()-128.0/255) > 1e-12 {
		t.Errorf("Alpha() = %v, want %v", c.Alpha(), 128.0/255)
	}
	if got := c.StringHEX(); got != "#ff000080" {
		t.Errorf("StringHEX() = %q, want #ff000080", got)
	}
}
