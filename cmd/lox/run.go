package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lox/internal"
)

func newInterpreter() *internal.Interpreter {
	return internal.NewInterpreter(stdPrinter{}, internal.WithLogger(logger))
}

func readSource(path string) (string, string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid path")
	}
	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", "", errors.Wrapf(err, "cannot read %s", path)
	}
	return absPath, string(b), nil
}

func runFile(path string) error {
	absPath, source, err := readSource(path)
	if err != nil {
		return err
	}
	logger.WithField("file", absPath).Debug("running script")

	interp := newInterpreter()
	interp.Run(source, false)

	if interp.HadError() {
		return exitError{exitData}
	}
	if interp.HadRuntimeError() {
		return exitError{exitSoftErr}
	}
	return nil
}

func runPrompt() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				logger.WithError(err).Debug("cannot read history")
			}
			f.Close()
		}
		defer writeHistory(ln, histPath)
	}

	interp := newInterpreter()
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "cannot read line")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		ok := interp.Run(line, cfg.Echo)
		logger.WithFields(logrus.Fields{
			"ok":           ok,
			"staticError":  interp.HadError(),
			"runtimeError": interp.HadRuntimeError(),
		}).Debug("line done")
		interp.ClearErrors()
	}
}

func writeHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.WithError(err).Debug("cannot write history")
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		logger.WithError(err).Debug("cannot write history")
	}
}
