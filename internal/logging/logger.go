package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global JSON logger at the configured level.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(NewStdoutHandler(level)))
}

// NewStdoutHandler returns the JSON stdout handler Setup installs, for
// callers composing it with other handlers.
func NewStdoutHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
}
