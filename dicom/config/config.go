// Package config defines the tunable memory bounds and behavioural options
// for the P10 reader and writer, validated fail-fast at construction time.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ReadConfig bounds the memory a streaming P10 reader may use while parsing
// a single instance, and controls how it reacts to malformed input.
type ReadConfig struct {
	// MaxTokenSize caps the number of bytes buffered for a single
	// DataElementValueBytesToken chunk before it is flushed to the caller.
	MaxTokenSize uint32 `validate:"required,gt=0"`
	// MaxStringSize caps the number of bytes read for a single string-VR
	// value; longer values are rejected rather than silently truncated.
	MaxStringSize uint32 `validate:"required,gt=0"`
	// MaxSequenceDepth caps how many sequences/items may be nested before
	// the reader refuses to descend further.
	MaxSequenceDepth uint32 `validate:"required,gt=0"`
	// AllowInvalidVR, when true, falls back to UN for a data element whose
	// explicit VR bytes are not one of the 34 standard two-letter codes,
	// instead of raising dcmerror.MalformedData.
	AllowInvalidVR bool
}

// DefaultReadConfig mirrors the defaults used throughout this codec's own
// tests and CLI: generous enough for real instances, small enough to bound
// a misbehaving or malicious stream.
func DefaultReadConfig() ReadConfig {
	return ReadConfig{
		MaxTokenSize:     1024 * 1024 * 1024, // 1 GiB
		MaxStringSize:    1024 * 1024,        // 1 MiB
		MaxSequenceDepth: 1000,
		AllowInvalidVR:   true,
	}
}

// NewReadConfig validates cfg and returns it, or an error describing which
// field failed validation.
func NewReadConfig(cfg ReadConfig) (*ReadConfig, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid read config: %w", err)
	}
	return &cfg, nil
}

// WriteConfig controls how a P10 writer frames its output.
type WriteConfig struct {
	// ZlibCompressionLevel is passed to the deflate writer when the active
	// transfer syntax is Deflated Explicit VR Little Endian. Valid range
	// matches compress/flate: -2 (huffman only) through 9 (best compression).
	ZlibCompressionLevel int `validate:"gte=-2,lte=9"`
}

// DefaultWriteConfig uses the standard library's default compression
// trade-off.
func DefaultWriteConfig() WriteConfig {
	return WriteConfig{ZlibCompressionLevel: -1} // flate.DefaultCompression
}

// NewWriteConfig validates cfg and returns it, or an error describing which
// field failed validation.
func NewWriteConfig(cfg WriteConfig) (*WriteConfig, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid write config: %w", err)
	}
	return &cfg, nil
}
