// Package config loads the TOML settings of the recurse demo binary.
//
//	verbose   = false
//	color     = "auto"   # auto | always | never
//	max_input = 10000    # largest |argument| the CLI passes to the library
//	families  = ["linear", "multiple", "tail", "divide", "sequence", "checked"]
//
// A missing file yields Default(). The library packages take no
// configuration; max_input is the caller-side bound applied before any
// call, on top of the ceilings the library enforces itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/recurse/core"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Families lists the algorithm families in menu order.
var Families = []string{"linear", "multiple", "tail", "divide", "sequence", "checked"}

// Config is the decoded settings file.
type Config struct {
	Verbose  bool     `toml:"verbose"`
	Color    string   `toml:"color"`
	MaxInput int      `toml:"max_input"`
	Families []string `toml:"families"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Verbose:  false,
		Color:    ColorAuto,
		MaxInput: core.MaxDepth,
		Families: slices.Clone(Families),
	}
}

// Load reads path. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML bytes over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks colour mode, input ceiling and family names.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q: %w", c.Color, ErrInvalidConfig)
	}
	if c.MaxInput <= 0 {
		return fmt.Errorf("max_input %d must be > 0: %w", c.MaxInput, ErrInvalidConfig)
	}
	for _, f := range c.Families {
		if !slices.Contains(Families, f) {
			return fmt.Errorf("unknown family %q: %w", f, ErrInvalidConfig)
		}
	}

	return nil
}

// Encode renders c as TOML, used by `recurse config`.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
