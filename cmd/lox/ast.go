package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lox/internal"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, source, err := readSource(args[0])
		if err != nil {
			return err
		}

		interp := newInterpreter()
		stmts := interp.Parse(interp.Scan(source))
		if interp.PrintErrors() {
			return exitError{exitData}
		}

		fmt.Fprint(cmd.OutOrStdout(), internal.FormatTree(stmts))
		return nil
	},
}
