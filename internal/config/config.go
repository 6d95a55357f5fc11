// Package config holds the driver settings read from a TOML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileName is the settings file looked up in the user's home directory
const FileName = ".loxrc.toml"

// Config are the settings of the lox driver
type Config struct {
	// LogLevel is a logrus level name
	LogLevel string `toml:"log_level"`
	// Color is one of auto, on or off
	Color string `toml:"color"`
	// Prompt is shown by the REPL before every line
	Prompt string `toml:"prompt"`
	// HistoryFile stores REPL history, relative paths are taken from $HOME
	HistoryFile string `toml:"history_file"`
	// Echo prints the value of bare expression statements in the REPL
	Echo bool `toml:"echo"`
}

// Default returns the settings used when no file overrides them
func Default() Config {
	return Config{
		LogLevel:    "warning",
		Color:       "auto",
		Prompt:      "> ",
		HistoryFile: ".lox_history",
		Echo:        true,
	}
}

// DefaultPath returns the location of the settings file in the home directory
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load overlays the file at path on top of Default. When explicit is false
// a missing file is not an error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "cannot read config %s", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate checks enumerated settings
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return errors.Errorf("invalid color mode %q (auto|on|off)", c.Color)
	}
	return nil
}

// HistoryPath resolves HistoryFile against the home directory
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}
