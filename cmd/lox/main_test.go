package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func runArgs(t *testing.T, args ...string) (int, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(append(args, "--color", "off"))
	return execute(), out.String()
}

func TestExitCodes(t *testing.T) {
	code, _ := runArgs(t, writeScript(t, "var a = 1;"))
	assert.Equal(t, 0, code)

	code, _ = runArgs(t, writeScript(t, "var = 1;"))
	assert.Equal(t, exitData, code)

	code, _ = runArgs(t, writeScript(t, "print 1/0;"))
	assert.Equal(t, exitSoftErr, code)

	code, _ = runArgs(t, "a.lox", "b.lox")
	assert.Equal(t, exitUsage, code)
}

func TestAstCommand(t *testing.T) {
	code, out := runArgs(t, "ast", writeScript(t, "print 1 + 2 * 3;"))
	assert.Equal(t, 0, code)
	assert.Equal(t, "(print (+ 1 (* 2 3)))\n", out)
}

func TestTokenizeCommand(t *testing.T) {
	code, out := runArgs(t, "tokenize", writeScript(t, "var x;"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "x")
	assert.Equal(t, 4, bytes.Count([]byte(out), []byte("\n")))
}

func TestBadColorFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rootCmd.SetArgs([]string{writeScript(t, "var a;"), "--color", "rainbow"})
	assert.Equal(t, 1, execute())
}
