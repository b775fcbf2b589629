package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var (
		from   string
		render renderFlags
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours to another notation",
		Long: `Convert one or more colours to another colour space.

Input is read in any supported notation. Bare channel values such as
"120, 50, 60" are read as rgb unless --from (or the "from" setting) names
their format.

Examples:
  # Hex to HSL
  colourmaster convert "#ff8000" --to hsl

  # Bare values as HSL, printed as CIE LAB with two decimals
  colourmaster convert --from hsl "190, 60, 60" --to lab -p 2,2,2

  # Several colours without alpha
  colourmaster convert red lime blue --to hex --alpha=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := setup(cmd, from)
			if err != nil {
				return err
			}

			colours, err := reader.readArgs(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range colours {
				fmt.Fprintln(out, withSwatch(out, render.preview, c, render.render(c)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "format of the input when it has no prefix")
	render.register(cmd.Flags())

	return cmd
}
