// Package config loads the optional TOML configuration file. Everything has a
// default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tool's settings.
type Config struct {
	// DBPath is the SQLite database location. The CALLSHEET_DB environment
	// variable overrides it.
	DBPath string `toml:"db_path"`
	// Color enables ANSI color in output when writing to a terminal.
	Color bool `toml:"color"`
	// LogUseCases writes service telemetry to stderr.
	LogUseCases bool `toml:"log_use_cases"`
}

// DefaultPath returns the default config file location, ~/.callsheet/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".callsheet", "config.toml"), nil
}

// Default returns the built-in configuration.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath: filepath.Join(home, ".callsheet", "callsheet.db"),
		Color:  true,
	}, nil
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. The CALLSHEET_DB environment variable takes precedence over
// the configured db_path.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if env := os.Getenv("CALLSHEET_DB"); env != "" {
		cfg.DBPath = env
	}
	return cfg, nil
}
