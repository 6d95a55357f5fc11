package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
prompt = "lox> "
echo = false
`)
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.False(t, cfg.Echo)
	// untouched keys keep their defaults
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, ".lox_history", cfg.HistoryFile)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	assert.Error(t, err)
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, err := Load(writeConfig(t, `color = "sometimes"`), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")

	_, err = Load(writeConfig(t, `prompt = `), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestHistoryPath(t *testing.T) {
	cfg := Default()
	cfg.HistoryFile = "/tmp/history"
	assert.Equal(t, "/tmp/history", cfg.HistoryPath())

	cfg.HistoryFile = ""
	assert.Equal(t, "", cfg.HistoryPath())
}
