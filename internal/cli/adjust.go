package cli

import (
	"fmt"

	"github.com/jmylchreest/colourmaster/pkg/colour"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// adjustment is one mutator flag. Adjustments run in declaration order.
type adjustment struct {
	flag  string
	usage string
	apply func(c *colour.Colour, v float64) *colour.Colour
}

var valueAdjustments = []adjustment{
	{"hue-to", "set the hue in degrees", (*colour.Colour).HueTo},
	{"hue-by", "rotate the hue by degrees", (*colour.Colour).HueBy},
	{"saturation-to", "set the saturation in percent", (*colour.Colour).SaturationTo},
	{"saturate", "add saturation percentage points", (*colour.Colour).SaturateBy},
	{"desaturate", "remove saturation percentage points", (*colour.Colour).DesaturateBy},
	{"lightness-to", "set the lightness in percent", (*colour.Colour).LightnessTo},
	{"lighter", "add lightness percentage points", (*colour.Colour).LighterBy},
	{"darker", "remove lightness percentage points", (*colour.Colour).DarkerBy},
	{"alpha-to", "set the alpha channel (0-1)", (*colour.Colour).AlphaTo},
	{"alpha-by", "add to the alpha channel", (*colour.Colour).AlphaBy},
}

type adjustFlags struct {
	values      map[string]*float64
	invert      bool
	invertAlpha bool
	grayscale   bool
	webSafe     bool
}

func (a *adjustFlags) register(flags *pflag.FlagSet) {
	a.values = make(map[string]*float64, len(valueAdjustments))
	for _, adj := range valueAdjustments {
		a.values[adj.flag] = flags.Float64(adj.flag, 0, adj.usage)
	}
	flags.BoolVar(&a.invert, "invert", false, "invert the colour channels")
	flags.BoolVar(&a.invertAlpha, "invert-alpha", false, "also invert alpha when inverting")
	flags.BoolVar(&a.grayscale, "grayscale", false, "remove all saturation")
	flags.BoolVar(&a.webSafe, "web-safe", false, "snap to the closest web-safe colour")
}

// apply runs every adjustment set on flags against c.
func (a *adjustFlags) apply(flags *pflag.FlagSet, c *colour.Colour) (*colour.Colour, int) {
	n := 0
	for _, adj := range valueAdjustments {
		if flags.Changed(adj.flag) {
			c = adj.apply(c, *a.values[adj.flag])
			n++
		}
	}
	if a.invert || a.invertAlpha {
		c = c.Invert(a.invertAlpha)
		n++
	}
	if a.grayscale {
		c = c.Grayscale()
		n++
	}
	if a.webSafe {
		c = c.ClosestWebSafe()
		n++
	}
	return c, n
}

func newAdjustCmd() *cobra.Command {
	var (
		from   string
		adjust adjustFlags
		render renderFlags
	)

	cmd := &cobra.Command{
		Use:   "adjust <colour>...",
		Short: "Adjust hue, saturation, lightness or alpha",
		Long: `Apply HSL adjustments to one or more colours.

Adjustments run in a fixed order: hue, saturation, lightness, alpha,
invert, grayscale and finally web-safe snapping. Output keeps the input's
notation unless --to is given.

Examples:
  colourmaster adjust "hsla(190, 60%, 60%, 0.6)" --hue-by 50
  colourmaster adjust red --lighter 20 --alpha-to 0.5 --to hex
  colourmaster adjust "#5cc2d6" --invert --invert-alpha`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, reader, err := setup(cmd, from)
			if err != nil {
				return err
			}

			colours, err := reader.readArgs(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range colours {
				adjusted, n := adjust.apply(cmd.Flags(), c)
				if n == 0 {
					logger.Warn("no adjustments requested", "colour", c.String())
				}
				fmt.Fprintln(out, withSwatch(out, render.preview, adjusted, render.render(adjusted)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "format of the input when it has no prefix")
	adjust.register(cmd.Flags())
	render.register(cmd.Flags())

	return cmd
}
