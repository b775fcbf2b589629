package cli

import (
	"fmt"

	"github.com/jmylchreest/colourmaster/pkg/colour"
	"github.com/spf13/cobra"
)

// sampleColour is rendered in every notation by the spaces command.
var sampleColour = colour.RGBA{R: 255, G: 128, B: 0, A: 1}

func newSpacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List supported colour spaces",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c := colour.From(sampleColour)
			table := NewTable([]string{"FORMAT", "EXAMPLE"})
			for _, f := range spaceFormats() {
				table.AddRow([]string{f.String(), c.StringAs(f)})
			}
			table.AddRow([]string{colour.FormatName.String(), "orange, Light Sea Green, transparent"})
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
