package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the tokens of a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, source, err := readSource(args[0])
		if err != nil {
			return err
		}

		interp := newInterpreter()
		tokens := interp.Scan(source)
		if interp.PrintErrors() {
			return exitError{exitData}
		}

		out := cmd.OutOrStdout()
		for i, tk := range tokens {
			fmt.Fprintf(out, "%4d  line %-4d %s\n", i, tk.Line, tk.String())
		}
		return nil
	},
}
