package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// ErrInvalidColour is returned by strict parsing when no parser accepts the input.
var ErrInvalidColour = errors.New("invalid colour")

// Parser reads one colour format from an Input.
type Parser interface {
	// Format returns the format this parser recognises.
	Format() Format
	// Parse returns the colour read from in, or false if in is not in this
	// parser's format. Out-of-range channels are clamped, not rejected.
	Parse(in Input) (Space, bool)
}

// Registry holds an ordered list of parsers. The first parser to accept an
// input wins, so registration order decides between ambiguous shapes.
//
// A Registry is not safe for concurrent modification; register parsers
// during initialisation and only parse afterwards.
type Registry struct {
	parsers []Parser
	logger  hclog.Logger
}

// NewRegistry creates a registry that tries parsers in the given order.
func NewRegistry(parsers ...Parser) *Registry {
	return &Registry{
		parsers: append([]Parser(nil), parsers...),
		logger:  hclog.NewNullLogger(),
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(DefaultParsers()...)
})

// DefaultRegistry returns the process-wide registry of built-in parsers used by New.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// WithLogger returns a copy of the registry that traces parser attempts to
// logger. The receiver is left untouched, so this is safe on DefaultRegistry.
func (r *Registry) WithLogger(logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	cp := *r
	cp.parsers = r.Parsers()
	cp.logger = logger
	return &cp
}

// Register appends a parser. It is tried after every parser already registered.
func (r *Registry) Register(p Parser) {
	r.parsers = append(r.parsers, p)
}

// Parsers returns the registered parsers in the order they are tried.
func (r *Registry) Parsers() []Parser {
	return append([]Parser(nil), r.parsers...)
}

// Parse returns the colour read by the first parser that accepts in.
// If none does, the colour is opaque black with FormatInvalid.
func (r *Registry) Parse(in Input) *Colour {
	for _, p := range r.parsers {
		s, ok := p.Parse(in)
		if !ok || s == nil {
			r.logger.Trace("parser rejected input", "parser", p.Format(), "input", in.String())
			continue
		}
		r.logger.Trace("parser accepted input", "parser", p.Format(), "format", s.Format(), "input", in.String())
		return fromSpace(s)
	}

	r.logger.Debug("no parser accepted input", "input", in.String())
	return invalidColour()
}

// ParseStrict is Parse, returning ErrInvalidColour when no parser accepts in.
func (r *Registry) ParseStrict(in Input) (*Colour, error) {
	c := r.Parse(in)
	if !c.IsValid() {
		return c, fmt.Errorf("%w: %s", ErrInvalidColour, in)
	}
	return c, nil
}

// DefaultParsers returns the built-in parsers in their default order.
func DefaultParsers() []Parser {
	return []Parser{
		RGBParser(),
		HEXParser(),
		HSLParser(),
		HSVParser(),
		HWBParser(),
		CMYKParser(),
		LABParser(),
		LCHParser(),
		LUVParser(),
		UVWParser(),
		XYZParser(),
		RYBParser(),
		NameParser(),
	}
}

// spaceParser reads a numeric colour space from fields, positional values
// or text.
type spaceParser struct {
	format   Format
	channels []string
	alphaKey string
	prefixes []string // longest first
	bare     bool     // reads unhinted text without a prefix
	build    func(v []float64, alpha float64) Space
}

// RGBParser reads rgb(R, G, B[, A]) and {r, g, b[, a]}.
func RGBParser() Parser {
	return &spaceParser{
		format:   FormatRGB,
		channels: []string{"r", "g", "b"},
		alphaKey: "a",
		prefixes: []string{"rgba(", "rgb("},
		bare:     true,
		build: func(v []float64, a float64) Space {
			return RGBA{R: v[0], G: v[1], B: v[2], A: a}.ToRGBA()
		},
	}
}

// HSLParser reads hsl(H, S%, L%[, A]) and {h, s, l[, a]}.
func HSLParser() Parser {
	return &spaceParser{
		format:   FormatHSL,
		channels: []string{"h", "s", "l"},
		alphaKey: "a",
		prefixes: []string{"hsla(", "hsl("},
		build: func(v []float64, a float64) Space {
			return HSLA{H: AdjustHue(v[0]), S: clampPercent(v[1]), L: clampPercent(v[2]), A: a}
		},
	}
}

// HSVParser reads hsv(H, S%, V%[, A]) and {h, s, v[, a]}.
func HSVParser() Parser {
	return &spaceParser{
		format:   FormatHSV,
		channels: []string{"h", "s", "v"},
		alphaKey: "a",
		prefixes: []string{"hsva(", "hsv("},
		build: func(v []float64, a float64) Space {
			return HSVA{H: AdjustHue(v[0]), S: clampPercent(v[1]), V: clampPercent(v[2]), A: a}
		},
	}
}

// HWBParser reads hwb(H, W%, B%[, A]) and {h, w, b[, a]}.
func HWBParser() Parser {
	return &spaceParser{
		format:   FormatHWB,
		channels: []string{"h", "w", "b"},
		alphaKey: "a",
		prefixes: []string{"hwba(", "hwb("},
		build: func(v []float64, a float64) Space {
			return HWBA{H: AdjustHue(v[0]), W: clampPercent(v[1]), B: clampPercent(v[2]), A: a}
		},
	}
}

// CMYKParser reads cmyk[a](C, M, Y, K[, A]), device-cmyk(...) and {c, m, y, k[, a]}.
func CMYKParser() Parser {
	return &spaceParser{
		format:   FormatCMYK,
		channels: []string{"c", "m", "y", "k"},
		alphaKey: "a",
		prefixes: []string{"device-cmyk(", "cmyka(", "cmyk("},
		build: func(v []float64, a float64) Space {
			return CMYKA{C: clampPercent(v[0]), M: clampPercent(v[1]), Y: clampPercent(v[2]), K: clampPercent(v[3]), A: a}
		},
	}
}

// LABParser reads lab(L%, A, B[, alpha]) and {l, a, b[, alpha]}.
func LABParser() Parser {
	return &spaceParser{
		format:   FormatLAB,
		channels: []string{"l", "a", "b"},
		alphaKey: "alpha",
		prefixes: []string{"laba(", "lab("},
		build: func(v []float64, a float64) Space {
			return LABA{L: clampPercent(v[0]), A: v[1], B: v[2], Alpha: a}
		},
	}
}

// LCHParser reads lch(L%, C, H[, A]) and {l, c, h[, a]}.
func LCHParser() Parser {
	return &spaceParser{
		format:   FormatLCH,
		channels: []string{"l", "c", "h"},
		alphaKey: "a",
		prefixes: []string{"lcha(", "lch("},
		build: func(v []float64, a float64) Space {
			return LCHA{L: clampPercent(v[0]), C: math.Max(0, v[1]), H: AdjustHue(v[2]), A: a}
		},
	}
}

// LUVParser reads color(luv L%, U, V[, A]) and {l, u, v[, a]}.
func LUVParser() Parser {
	return &spaceParser{
		format:   FormatLUV,
		channels: []string{"l", "u", "v"},
		alphaKey: "a",
		prefixes: []string{"color(luva", "color(luv"},
		build: func(v []float64, a float64) Space {
			return LUVA{L: clampPercent(v[0]), U: v[1], V: v[2], A: a}
		},
	}
}

// UVWParser reads color(uvw U, V, W[, A]) and {u, v, w[, a]}.
func UVWParser() Parser {
	return &spaceParser{
		format:   FormatUVW,
		channels: []string{"u", "v", "w"},
		alphaKey: "a",
		prefixes: []string{"color(uvwa", "color(uvw"},
		build: func(v []float64, a float64) Space {
			return UVWA{U: v[0], V: v[1], W: v[2], A: a}
		},
	}
}

// XYZParser reads color(xyz X, Y, Z[, A]) and {x, y, z[, a]}.
func XYZParser() Parser {
	return &spaceParser{
		format:   FormatXYZ,
		channels: []string{"x", "y", "z"},
		alphaKey: "a",
		prefixes: []string{"color(xyza", "color(xyz"},
		build: func(v []float64, a float64) Space {
			return XYZA{X: math.Max(0, v[0]), Y: math.Max(0, v[1]), Z: math.Max(0, v[2]), A: a}
		},
	}
}

// RYBParser reads color(ryb R, Y, B[, A]) and {r, y, b[, a]}.
func RYBParser() Parser {
	return &spaceParser{
		format:   FormatRYB,
		channels: []string{"r", "y", "b"},
		alphaKey: "a",
		prefixes: []string{"color(ryba", "color(ryb"},
		build: func(v []float64, a float64) Space {
			return RYBA{R: clampChannel(v[0]), Y: clampChannel(v[1]), B: clampChannel(v[2]), A: a}
		},
	}
}

func (p *spaceParser) Format() Format {
	return p.format
}

func (p *spaceParser) Parse(in Input) (Space, bool) {
	if !in.hinted(p.format) {
		return nil, false
	}

	switch in.Kind {
	case KindFields:
		return p.fromFields(in.Fields)
	case KindNumbers:
		return p.fromValues(in.Numbers)
	case KindStrings:
		// Unhinted textual channels belong to HEX.
		if in.Hint != p.format {
			return nil, false
		}
		values, ok := p.parseChannels(in.Strings)
		if !ok {
			return nil, false
		}
		return p.fromValues(values)
	case KindText:
		body, hasPrefix := stripPrefix(in.Text, p.prefixes)
		if !hasPrefix && !p.bare && in.Hint != p.format {
			return nil, false
		}
		values, ok := p.parseChannels(splitChannels(body))
		if !ok {
			return nil, false
		}
		return p.fromValues(values)
	}

	return nil, false
}

// parseChannels reads positional text channels. A percentage in the alpha
// position is a fraction of 100.
func (p *spaceParser) parseChannels(parts []string) ([]float64, bool) {
	values, ok := parseNumbers(parts)
	if !ok {
		return nil, false
	}
	if n := len(p.channels); len(parts) > n && strings.HasSuffix(strings.TrimSpace(parts[n]), "%") {
		values[n] /= maxPercent
	}
	return values, true
}

func (p *spaceParser) fromFields(fields map[string]float64) (Space, bool) {
	values := make([]float64, 0, len(p.channels)+1)
	for _, key := range p.channels {
		v, ok := fields[key]
		if !ok || math.IsNaN(v) {
			return nil, false
		}
		values = append(values, v)
	}
	if a, ok := fields[p.alphaKey]; ok {
		values = append(values, a)
	}
	return p.fromValues(values)
}

// fromValues reads positional channels. Fewer values than channels is not a
// match; values past alpha are ignored.
func (p *spaceParser) fromValues(values []float64) (Space, bool) {
	n := len(p.channels)
	if len(values) < n {
		return nil, false
	}
	for _, v := range values[:n] {
		if math.IsNaN(v) {
			return nil, false
		}
	}

	alpha := math.NaN()
	if len(values) > n {
		alpha = values[n]
	}

	return p.build(values[:n], AdjustAlpha(alpha)), true
}

// hexParser reads #RGB, #RGBA, #RRGGBB, #RRGGBBAA, hexadecimal fields and
// hexadecimal string channels.
type hexParser struct{}

// HEXParser returns the parser for hexadecimal notation.
func HEXParser() Parser {
	return hexParser{}
}

func (hexParser) Format() Format {
	return FormatHEX
}

func (hexParser) Parse(in Input) (Space, bool) {
	if !in.hinted(FormatHEX) {
		return nil, false
	}

	switch in.Kind {
	case KindHexFields:
		return hexFromParts(in.HexFields["r"], in.HexFields["g"], in.HexFields["b"], in.HexFields["a"])
	case KindStrings:
		return hexFromSlice(in.Strings)
	case KindText:
		text := strings.TrimSpace(in.Text)
		if digits, ok := strings.CutPrefix(text, "#"); ok {
			h, ok := splitHex(digits)
			return h, ok
		}
		body, hasPrefix := stripPrefix(text, []string{"hexa(", "hex("})
		if !hasPrefix && in.Hint != FormatHEX {
			return nil, false
		}
		parts := splitChannels(body)
		if len(parts) == 1 {
			h, ok := splitHex(parts[0])
			return h, ok
		}
		return hexFromSlice(parts)
	}

	return nil, false
}

func hexFromSlice(parts []string) (Space, bool) {
	if len(parts) < 3 {
		return nil, false
	}
	alpha := ""
	if len(parts) > 3 {
		alpha = parts[3]
	}
	return hexFromParts(parts[0], parts[1], parts[2], alpha)
}

func hexFromParts(r, g, b, a string) (Space, bool) {
	for _, s := range []string{r, g, b} {
		if _, ok := parseHexByte(s); !ok {
			return nil, false
		}
	}
	if a != "" {
		if _, ok := parseHexByte(a); !ok {
			a = ""
		}
	}
	return HEXA{R: r, G: g, B: b, A: a}, true
}

// stripPrefix lower-cases text and removes the first matching prefix.
func stripPrefix(text string, prefixes []string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(t, p); ok {
			return rest, true
		}
	}
	return t, false
}

var channelSeparators = strings.NewReplacer("(", " ", ")", " ", ",", " ", "/", " ")

// splitChannels splits "(1, 2%, 3 / 0.5)" style text into its values,
// keeping any "%" suffix.
func splitChannels(body string) []string {
	return strings.Fields(channelSeparators.Replace(body))
}

func parseNumbers(parts []string) ([]float64, bool) {
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

func clampPercent(v float64) float64 {
	return Clamp(0, v, maxPercent)
}

func clampChannel(v float64) float64 {
	return Clamp(0, v, maxChannel)
}
