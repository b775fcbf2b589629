// Package cli provides the command-line interface for colourmaster.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/colourmaster/internal/version"
	"github.com/jmylchreest/colourmaster/pkg/colour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the colourmaster command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colourmaster",
		Short: "Convert, inspect and adjust colours",
		Long: `colourmaster reads colours written in any common notation (hex, rgb, hsl,
hsv, hwb, cmyk, lab, lch, xyz, luv, uvw, ryb or a CSS name), converts
them between colour spaces and applies HSL adjustments.

Examples:
  colourmaster convert "#ff8000" --to hsl
  colourmaster inspect "hsl(190, 60%, 60%)"
  colourmaster adjust red --hue-by 30 --lighter 10`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().String("config", "", "config file (default is $XDG_CONFIG_HOME/colourmaster/config.yaml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newAdjustCmd())
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newSpacesCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			data, err := json.MarshalIndent(version.GetInfo(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to convert to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}

// setup loads the configuration and returns the logger and colour reader for
// a command run.
func setup(cmd *cobra.Command, from string) (hclog.Logger, *colourReader, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cmd, cfg)
	if from == "" {
		from = cfg.GetString(keyFrom)
	}
	reader, err := newColourReader(logger, from)
	if err != nil {
		return nil, nil, err
	}
	return logger, reader, nil
}

// newLogger returns the logger for a command run. Verbose runs log at debug
// level to stderr, quiet runs discard everything, and the log-level setting
// applies otherwise.
func newLogger(cmd *cobra.Command, cfg *viper.Viper) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Warn
	if l := hclog.LevelFromString(cfg.GetString(keyLogLevel)); l != hclog.NoLevel {
		level = l
	}
	if verbose {
		level = hclog.Debug
	}

	var output io.Writer = cmd.ErrOrStderr()
	if quiet {
		output = io.Discard
		level = hclog.Off
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourmaster",
		Output: output,
		Level:  level,
	})
}

// colourReader parses command arguments into colours.
type colourReader struct {
	registry *colour.Registry
	from     colour.Format
	logger   hclog.Logger
}

// newColourReader returns a reader that hints every argument with from.
// An empty from leaves arguments unhinted.
func newColourReader(logger hclog.Logger, from string) (*colourReader, error) {
	r := &colourReader{
		registry: colour.NewRegistry(colour.DefaultParsers()...).WithLogger(logger.Named("parse")),
		logger:   logger,
	}
	if from != "" {
		f, err := colour.ParseFormat(from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
		r.from = f
	}
	return r, nil
}

// read parses a single argument.
func (r *colourReader) read(arg string) (*colour.Colour, error) {
	in := colour.TextInput(arg)
	if r.from != colour.FormatInvalid {
		in = in.As(r.from)
	}

	c := r.registry.Parse(in)
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid colour %q", arg)
	}
	r.logger.Debug("parsed colour", "input", arg, "format", c.Format().String(), "rgb", c.StringRGB())
	return c, nil
}

// readArgs parses every argument, joining split notation such as
// `rgb(255, 0, 0)` passed without quotes.
func (r *colourReader) readArgs(args []string) ([]*colour.Colour, error) {
	var out []*colour.Colour
	for _, arg := range joinArgs(args) {
		c, err := r.read(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// joinArgs rejoins arguments that the shell split inside parentheses.
func joinArgs(args []string) []string {
	var out []string
	var pending []string
	depth := 0
	for _, arg := range args {
		depth += strings.Count(arg, "(") - strings.Count(arg, ")")
		pending = append(pending, arg)
		if depth <= 0 {
			out = append(out, strings.Join(pending, " "))
			pending = nil
			depth = 0
		}
	}
	if len(pending) > 0 {
		out = append(out, strings.Join(pending, " "))
	}
	return out
}
