package logging

import (
	"io"
	"log/slog"
	"os"
)

// Verbose reports whether debug-level logging is enabled.
var Verbose bool

// Logger is the shared structured logger. Setup replaces it; before Setup
// runs it logs info and above to stderr in text form.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Setup configures the shared logger. verbose enables debug records, json
// selects JSON output instead of text, and w is the destination (stderr
// when nil). Probe results themselves go through the User* functions, not
// the structured log.
func Setup(verbose, json bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// Debug logs a debug-level message with optional key-value pairs.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info-level message with optional key-value pairs.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning-level message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error-level message with optional key-value pairs.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
