package main

import (
	"fmt"
	"io"
	"os"
)

// stdPrinter writes program output to stdout and paints diagnostics sent
// to stderr red.
type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprint(w, colors.Red(fmt.Sprintf(format, a...)))
	}
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, colors.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}
