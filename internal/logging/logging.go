// Package logging configures the structured logger used for the
// logged-not-fatal conditions in dictionary loading: a missing corpus
// file or an unreadable custom dictionary.
package logging

import (
	"log/slog"
	"os"
)

// New returns a text-handler slog.Logger writing to stderr, leveled by the
// verbose flag: verbose enables debug-level output, otherwise info-and-above.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
