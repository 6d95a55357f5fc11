package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Exit codes follow the sysexits convention.
const (
	exitUsage   = 64
	exitData    = 65
	exitSoftErr = 70
)

type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var errUsage = errors.New("Usage: lox [script]")

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Tree-walking interpreter for the Lox language",
	Long: `lox runs a script when given a path and starts an interactive
prompt otherwise.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errUsage
		}
		return nil
	},
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runRoot,
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML settings file (default $HOME/.loxrc.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "logrus level: panic|fatal|error|warning|info|debug|trace")
	rootCmd.PersistentFlags().String("color", "", "colorize diagnostics (auto|on|off)")
}

func main() {
	os.Exit(execute())
}

func execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var exitErr exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, errUsage) {
		return exitUsage
	}
	return 1
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runPrompt()
}
