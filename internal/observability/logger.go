// Package observability provides logging setup and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger configures the default slog logger. Verbose mode enables
// debug level; logs go to stderr so rendered output on stdout stays clean.
func SetupLogger(verbose bool) *slog.Logger {
	return SetupLoggerTo(os.Stderr, verbose)
}

// SetupLoggerTo configures the default slog logger writing to w.
func SetupLoggerTo(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(logger)
	return logger
}
