// Package config loads the assembler's TOML configuration file: flash
// size, the default image format for disasm, and logging level.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the assembler's top-level configuration.
type Config struct {
	Assembler struct {
		FlashSize   int    `toml:"flash_size"`
		DefaultMode string `toml:"default_mode"` // "hex" or "bin"
	} `toml:"assembler"`

	Logging struct {
		Level string `toml:"level"` // debug, info, warn, error
	} `toml:"logging"`
}

// Default returns a Config populated with the assembler's built-in
// defaults: the ATmega328's full 32KB of flash, Intel HEX as disasm's
// input format, and info-level logging.
func Default() *Config {
	cfg := &Config{}
	cfg.Assembler.FlashSize = 0x8000
	cfg.Assembler.DefaultMode = "hex"
	cfg.Logging.Level = "info"
	return cfg
}

// LoadFrom reads and parses the TOML file at path, overlaying its values
// onto the defaults. A missing file is not an error; Default() is
// returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
