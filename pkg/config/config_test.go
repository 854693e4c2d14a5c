package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0x8000, cfg.Assembler.FlashSize)
	assert.Equal(t, "hex", cfg.Assembler.DefaultMode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[assembler]
flash_size = 16384
default_mode = "binary"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 16384, cfg.Assembler.FlashSize)
	assert.Equal(t, "binary", cfg.Assembler.DefaultMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
