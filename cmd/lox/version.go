package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// version can be overridden at build time via -ldflags
var version = "0.3.1"

// BuildDate is an optional build date in ISO-8601
var BuildDate = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "lox "+colorVersion(version))
		if BuildDate != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "built "+BuildDate)
		}
	},
}

func colorVersion(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	return versionMajorColor.Sprint(parts[0]) + "." + versionMinorColor.Sprint(parts[1]) + "." + versionPatchColor.Sprint(parts[2])
}
