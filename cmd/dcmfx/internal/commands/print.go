package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/dcmfx/dicom/transform"
)

// PrintCmd dumps a DICOM file's token stream as a styled textual listing.
type PrintCmd struct {
	Path string `arg:"" type:"existingfile" help:"DICOM file to print"`
}

// Run executes the print command.
func (c *PrintCmd) Run() error {
	logger := log.Default()

	tokens, err := readTokens(c.Path)
	if err != nil {
		return err
	}
	logger.Debug("read tokens", "file", c.Path, "count", len(tokens))

	if _, err := transform.Run(tokens, transform.NewPrint(os.Stdout)); err != nil {
		return fmt.Errorf("print %s: %w", c.Path, err)
	}
	return nil
}
