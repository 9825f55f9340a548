// Package charset decodes DICOM string values according to the Specific
// Character Set (0008,0005) element, via a small pluggable registry of
// golang.org/x/text/encoding decoders.
//
// Per-codepage tables beyond the built-in ISO_IR 6 (ASCII/UTF-8 default)
// and ISO_IR 100 (Latin-1) entries are an external collaborator: register
// additional encoding.Encoding values with Register for the rest of the
// Defined Terms in PS3.3 Annex C.12.1.1.2, using golang.org/x/text/encoding's
// charmap, japanese, korean, and simplifiedchinese subpackages.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decoder turns the raw bytes of a string-type data element value into Go
// text, given the code page(s) in effect for that value.
type Decoder interface {
	Decode(raw []byte) (string, error)
}

// registry maps a Specific Character Set Defined Term (PS3.3 Annex C.12.1.1.2,
// e.g. "ISO_IR 100", "ISO 2022 IR 149") to the encoding.Encoding that decodes
// it.
var registry = map[string]encoding.Encoding{
	"":               unicode.UTF8, // default character repertoire (ISO-IR 6) is ASCII, a UTF-8 subset
	"ISO_IR 6":        unicode.UTF8,
	"ISO 2022 IR 6":   unicode.UTF8,
	"ISO_IR 100":      charmap.ISO8859_1,
	"ISO 2022 IR 100": charmap.ISO8859_1,
}

// Register adds (or replaces) the decoder used for the given Specific
// Character Set Defined Term. Callers wire in golang.org/x/text/encoding's
// japanese, korean, and simplifiedchinese packages (and the remaining
// charmap code pages) this way rather than this package depending on all of
// them unconditionally.
func Register(definedTerm string, enc encoding.Encoding) {
	registry[definedTerm] = enc
}

// textEncoding returns the registered encoding.Encoding for a Specific
// Character Set Defined Term, defaulting to UTF-8/ASCII if unset. An
// unregistered term returns an error.
func textEncoding(definedTerm string) (encoding.Encoding, error) {
	term := strings.TrimSpace(definedTerm)
	if enc, ok := registry[term]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("no decoder registered for character set %q", definedTerm)
}

// decoder adapts an encoding.Encoding to Decoder.
type decoder struct {
	enc encoding.Encoding
}

// Decode transforms raw into a Go string using the wrapped encoding.
func (d decoder) Decode(raw []byte) (string, error) {
	out, err := d.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding with charset: %w", err)
	}
	return string(out), nil
}

// NewDecoder returns a Decoder for the given Specific Character Set value.
// A Specific Character Set element may list multiple values for ISO 2022
// code extension techniques; for those this package decodes using the
// first (default) Defined Term and leaves the escape-sequence-driven
// switching itself as the documented extension point.
func NewDecoder(specificCharacterSet []string) (Decoder, error) {
	term := ""
	if len(specificCharacterSet) > 0 {
		term = specificCharacterSet[0]
	}
	enc, err := textEncoding(term)
	if err != nil {
		return nil, err
	}
	return decoder{enc: enc}, nil
}
