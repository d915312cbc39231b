package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveOutputFormat picks the report format: an explicit flag wins, then
// the configured value; "auto" renders a table on a terminal and JSON
// everywhere else.
func resolveOutputFormat(flagValue, configValue string, out io.Writer) string {
	format := flagValue
	if format == "" {
		format = configValue
	}
	if format == "" || format == "auto" {
		if isTerminal(out) {
			return "table"
		}
		return "json"
	}
	return format
}
