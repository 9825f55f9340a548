package config_test

import (
	"testing"

	"github.com/codeninja55/dcmfx/dicom/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReadConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg, err := config.NewReadConfig(config.DefaultReadConfig())
		require.NoError(t, err)
		assert.Greater(t, cfg.MaxTokenSize, uint32(0))
	})

	t.Run("zero MaxTokenSize is rejected", func(t *testing.T) {
		cfg := config.DefaultReadConfig()
		cfg.MaxTokenSize = 0
		_, err := config.NewReadConfig(cfg)
		assert.Error(t, err)
	})
}

func TestNewWriteConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		_, err := config.NewWriteConfig(config.DefaultWriteConfig())
		require.NoError(t, err)
	})

	t.Run("compression level out of range is rejected", func(t *testing.T) {
		_, err := config.NewWriteConfig(config.WriteConfig{ZlibCompressionLevel: 99})
		assert.Error(t, err)
	})
}
