package main

import (
	"os"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lox/internal/config"
)

// settings resolved once per invocation from the config file and flags
var (
	cfg    = config.Default()
	logger = logrus.New()
	colors = color.New()
)

func loadSettings(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return errors.Wrap(err, "failed to get config flag")
	}
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err = config.Load(path, explicit)
	if err != nil {
		return err
	}

	if level, _ := flags.GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if mode, _ := flags.GetString("color"); mode != "" {
		cfg.Color = mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	if useColor(cfg.Color) {
		colors.Enable()
	} else {
		colors.Disable()
	}
	logger.WithFields(logrus.Fields{
		"config": path,
		"color":  cfg.Color,
	}).Debug("settings loaded")
	return nil
}

func useColor(mode string) bool {
	return mode == "on" || (mode == "auto" && isTerminal(os.Stderr))
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
