// Colourmaster - A colour conversion and manipulation tool
//
// Colourmaster converts, inspects and adjusts colours across the common
// colour spaces from the command line.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colourmaster/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
