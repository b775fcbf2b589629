package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/jmylchreest/colourmaster/pkg/colour"
	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// swatch returns a solid block of the colour using a 24-bit background escape.
// Alpha is ignored.
func swatch(c *colour.Colour, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	rgb := c.RGBA()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix,
		int(math.Round(rgb.R)), int(math.Round(rgb.G)), int(math.Round(rgb.B)), ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// withSwatch prefixes text with a swatch when previews are wanted and w is a terminal.
func withSwatch(w io.Writer, want bool, c *colour.Colour, text string) string {
	if !want || !isTerminal(w) {
		return text
	}
	return swatch(c, swatchWidth) + "  " + text
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
