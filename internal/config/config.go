// Package config resolves CLI defaults from the environment. A .env file in
// the working directory is loaded first (silently skipped when absent), then
// PALETTA_* environment variables override the built-in defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/paletta/internal/colour"
)

// Environment variable names recognised by the CLI.
const (
	EnvColourCount = "PALETTA_COLOURS"
	EnvFormat      = "PALETTA_FORMAT"
	EnvPreview     = "PALETTA_PREVIEW"
)

// Config holds the resolved CLI defaults.
type Config struct {
	// ColourCount is the default number of colours to extract.
	ColourCount int

	// Format is the default output format (hex, rgb, json).
	Format string

	// Preview enables terminal swatch previews by default.
	Preview bool
}

// Default returns the built-in defaults used when the environment sets
// nothing.
func Default() Config {
	return Config{
		ColourCount: colour.DefaultColorCount,
		Format:      "hex",
		Preview:     false,
	}
}

// Load resolves the configuration: built-in defaults, then a .env file if
// one exists, then process environment variables.
func Load() (Config, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv(EnvColourCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 256 {
			return cfg, fmt.Errorf("invalid %s: %q (expected 1-256)", EnvColourCount, v)
		}
		cfg.ColourCount = n
	}

	if v := os.Getenv(EnvFormat); v != "" {
		format := strings.ToLower(v)
		switch format {
		case "hex", "rgb", "json":
			cfg.Format = format
		default:
			return cfg, fmt.Errorf("invalid %s: %q (expected hex, rgb or json)", EnvFormat, v)
		}
	}

	if v := os.Getenv(EnvPreview); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %q (expected a boolean)", EnvPreview, v)
		}
		cfg.Preview = enabled
	}

	return cfg, nil
}
