package cli

import (
	"fmt"

	"github.com/jmylchreest/colourmaster/pkg/colour"
	"github.com/spf13/cobra"
)

func newRandomCmd() *cobra.Command {
	var (
		count  int
		opaque bool
		render renderFlags
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random colours",
		Long: `Generate uniformly random colours.

Examples:
  colourmaster random
  colourmaster random --count 5 --to hsl --opaque`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("invalid --count %d: must be at least 1", count)
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				c := colour.Random()
				if opaque {
					c.AlphaTo(1)
				}
				fmt.Fprintln(out, withSwatch(out, render.preview, c, render.render(c)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of colours to generate")
	cmd.Flags().BoolVar(&opaque, "opaque", false, "generate fully opaque colours")
	render.register(cmd.Flags())

	return cmd
}
