// Package commands implements the dcmfx CLI's subcommands: print, modify,
// and get-pixel-data. Each is a thin layer of glue over the p10read,
// p10write, transform, and anonymize packages.
package commands

import (
	"fmt"
	"os"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/codeninja55/dcmfx/dicom/p10read"
	"github.com/codeninja55/dcmfx/dicom/tag"
)

var transferSyntaxTag = tag.TransferSyntaxUID

// readTokens loads path in full and drains every token the P10 reader
// produces from it. The CLI operates on whole files rather than a bounded
// streaming input, so a single WriteBytes(data, eof=true) followed by one
// ReadTokens call is enough; the underlying reader and transforms remain
// streaming regardless of how the CLI happens to supply their input.
func readTokens(path string) ([]dicom.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := config.NewReadConfig(config.DefaultReadConfig())
	if err != nil {
		return nil, fmt.Errorf("build read config: %w", err)
	}

	r := p10read.NewReader(*cfg)
	if err := r.WriteBytes(data, true); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	tokens, err := r.ReadTokens()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}

// transferSyntaxUID finds the Transfer Syntax UID (0002,0010) carried by
// the File Meta Information token in tokens.
func transferSyntaxUID(tokens []dicom.Token) (string, error) {
	for _, tok := range tokens {
		fm, ok := tok.(dicom.FileMetaInformationToken)
		if !ok {
			continue
		}
		el, err := fm.DataSet.Get(transferSyntaxTag)
		if err != nil {
			return "", fmt.Errorf("file meta has no Transfer Syntax UID: %w", err)
		}
		return el.Value().String(), nil
	}
	return "", fmt.Errorf("no File Meta Information token in stream")
}
