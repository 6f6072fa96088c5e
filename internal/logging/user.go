package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output, separate from the structured debug logging. Probe
// outcomes and progress lines go here; diagnostics go through slog.

func user(w io.Writer, glyph, format string, args ...interface{}) {
	fmt.Fprintf(w, glyph+" "+format+"\n", args...)
}

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	user(os.Stdout, "ℹ", format, args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	user(os.Stdout, "✓", format, args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	user(os.Stderr, "⚠", format, args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	user(os.Stderr, "✗", format, args...)
}
