package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/colourmaster/pkg/colour"
	"github.com/spf13/cobra"
)

// inspection is the JSON form of inspect's output.
type inspection struct {
	Input   string            `json:"input"`
	Format  colour.Format     `json:"format"`
	Name    string            `json:"name,omitempty"`
	RGBA    colour.RGBA       `json:"rgba"`
	HEXA    colour.HEXA       `json:"hexa"`
	HSLA    colour.HSLA       `json:"hsla"`
	HSVA    colour.HSVA       `json:"hsva"`
	HWBA    colour.HWBA       `json:"hwba"`
	CMYKA   colour.CMYKA      `json:"cmyka"`
	XYZA    colour.XYZA       `json:"xyza"`
	LABA    colour.LABA       `json:"laba"`
	LCHA    colour.LCHA       `json:"lcha"`
	LUVA    colour.LUVA       `json:"luva"`
	UVWA    colour.UVWA       `json:"uvwa"`
	RYBA    colour.RYBA       `json:"ryba"`
	Strings map[string]string `json:"strings"`
}

func newInspectCmd() *cobra.Command {
	var (
		from      string
		format    string
		precision []int
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <colour>",
		Short: "Show a colour in every colour space",
		Long: `Show a colour in every supported colour space.

Examples:
  colourmaster inspect "hsl(190, 60%, 60%)"
  colourmaster inspect --format json darkorchid
  colourmaster inspect --preview "#5cc2d6"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := setup(cmd, from)
			if err != nil {
				return err
			}

			inputs := joinArgs(args)
			if len(inputs) != 1 {
				return fmt.Errorf("expected one colour, got %d", len(inputs))
			}
			c, err := reader.read(inputs[0])
			if err != nil {
				return err
			}

			var opts []colour.StringOption
			if len(precision) > 0 {
				opts = append(opts, colour.WithPrecision(precision...))
			}

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				if preview && isTerminal(out) {
					fmt.Fprintln(out, swatch(c, swatchWidth*2))
				}
				fmt.Fprint(out, inspectTable(c, opts).Render())
			case "json":
				data, err := json.MarshalIndent(inspect(inputs[0], c, opts), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			default:
				return fmt.Errorf("unsupported format: %s (supported: table, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "format of the input when it has no prefix")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	cmd.Flags().IntSliceVarP(&precision, "precision", "p", nil, "decimal places per channel, alpha last")
	cmd.Flags().BoolVar(&preview, "preview", false, "show a colour swatch when writing to a terminal")

	return cmd
}

// spaceFormats are the formats inspect renders, in display order.
func spaceFormats() []colour.Format {
	var out []colour.Format
	for _, f := range colour.Formats() {
		if f != colour.FormatName {
			out = append(out, f)
		}
	}
	return out
}

func inspectTable(c *colour.Colour, opts []colour.StringOption) *Table {
	table := NewTable([]string{"SPACE", "VALUE"})
	for _, f := range spaceFormats() {
		table.AddRow([]string{f.String(), c.StringAs(f, opts...)})
	}
	if name, ok := c.Name(); ok {
		table.AddRow([]string{"name", name})
	}
	return table
}

func inspect(input string, c *colour.Colour, opts []colour.StringOption) inspection {
	name, _ := c.Name()
	strs := make(map[string]string, len(spaceFormats()))
	for _, f := range spaceFormats() {
		strs[f.String()] = c.StringAs(f, opts...)
	}
	return inspection{
		Input:   input,
		Format:  c.Format(),
		Name:    name,
		RGBA:    c.RGBA(),
		HEXA:    c.HEXA(),
		HSLA:    c.HSLA(),
		HSVA:    c.HSVA(),
		HWBA:    c.HWBA(),
		CMYKA:   c.CMYKA(),
		XYZA:    c.XYZA(),
		LABA:    c.LABA(),
		LCHA:    c.LCHA(),
		LUVA:    c.LUVA(),
		UVWA:    c.UVWA(),
		RYBA:    c.RYBA(),
		Strings: strs,
	}
}
