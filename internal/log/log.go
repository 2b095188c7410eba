package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a logger writing human-oriented structured output.
// With verbose enabled the level drops to debug; otherwise info and
// above are emitted. Timestamps are stripped because the CLI runs are
// short-lived and interactive.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}
