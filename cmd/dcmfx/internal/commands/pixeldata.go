package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/dcmfx/dicom/transform"
)

// PixelDataCmd extracts each pixel data frame of a DICOM file to its own
// raw file in an output directory.
type PixelDataCmd struct {
	Path            string `arg:"" type:"existingfile" help:"DICOM file to extract pixel data from"`
	OutputDirectory string `name:"output-directory" required:"" help:"Directory frames are written to"`
}

// Run executes the get-pixel-data command.
func (c *PixelDataCmd) Run() error {
	logger := log.Default()

	tokens, err := readTokens(c.Path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.OutputDirectory, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", c.OutputDirectory, err)
	}

	base := filepath.Base(c.Path)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	frameIndex := 0
	onFrame := func(f transform.Frame) {
		outPath := filepath.Join(c.OutputDirectory, fmt.Sprintf("%s.%04d.raw", stem, frameIndex))
		if err := os.WriteFile(outPath, f.Data, 0o644); err != nil {
			logger.Error("write frame", "path", outPath, "error", err)
			return
		}
		if f.BitOffset != 0 {
			logger.Debug("wrote frame", "path", outPath, "bytes", len(f.Data), "bit_offset", f.BitOffset)
		} else {
			logger.Debug("wrote frame", "path", outPath, "bytes", len(f.Data))
		}
		frameIndex++
	}

	if _, err := transform.Run(tokens, transform.NewPixelDataFrame(onFrame)); err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}

	if frameIndex == 0 {
		logger.Warn("no pixel data frames found", "file", c.Path)
		return nil
	}

	logger.Info("extracted pixel data", "file", c.Path, "frames", frameIndex, "dir", c.OutputDirectory)
	return nil
}
