// Command dcmfx is a CLI for inspecting, modifying, and de-identifying
// DICOM Part 10 files.
package main

import (
	"os"

	"github.com/codeninja55/dcmfx/cmd/dcmfx/internal/cli"
	"github.com/codeninja55/dcmfx/cmd/dcmfx/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ui.PrintBanner()

	if err := cli.Run(version, commit, date); err != nil {
		os.Exit(1)
	}
}
