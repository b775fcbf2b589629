package cli

import (
	"strings"

	"github.com/jmylchreest/colourmaster/pkg/colour"
	"github.com/spf13/pflag"
)

// formatValue is a pflag.Value holding a colour format.
type formatValue struct {
	format *colour.Format
}

var _ pflag.Value = formatValue{}

func newFormatValue(f *colour.Format, def colour.Format) formatValue {
	*f = def
	return formatValue{format: f}
}

func (v formatValue) String() string {
	if v.format == nil || *v.format == colour.FormatInvalid {
		return ""
	}
	return v.format.String()
}

func (v formatValue) Set(s string) error {
	f, err := colour.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.format = f
	return nil
}

func (v formatValue) Type() string {
	return "format"
}

// formatNames lists the accepted --to values for help text.
func formatNames() string {
	names := make([]string, 0, len(colour.Formats()))
	for _, f := range colour.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// renderFlags are the output flags shared by every command that prints colours.
type renderFlags struct {
	to        colour.Format
	precision []int
	alpha     bool
	preview   bool
}

func (r *renderFlags) register(flags *pflag.FlagSet) {
	flags.VarP(newFormatValue(&r.to, colour.FormatInvalid), "to", "t", "output format ("+formatNames()+"); defaults to the input's format")
	flags.IntSliceVarP(&r.precision, "precision", "p", nil, "decimal places per channel, alpha last (negative disables rounding)")
	flags.BoolVar(&r.alpha, "alpha", true, "include the alpha channel")
	flags.BoolVar(&r.preview, "preview", false, "show a colour swatch when writing to a terminal")
}

// options converts the flags into rendering options.
func (r *renderFlags) options() []colour.StringOption {
	opts := []colour.StringOption{colour.WithAlpha(r.alpha)}
	if len(r.precision) > 0 {
		opts = append(opts, colour.WithPrecision(r.precision...))
	}
	return opts
}

// render formats c in the requested format, or in its own.
func (r *renderFlags) render(c *colour.Colour) string {
	f := r.to
	if f == colour.FormatInvalid {
		f = c.Format()
	}
	return c.StringAs(f, r.options()...)
}
