// Package logger provides structured logging using slog.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing to stdout with the specified level and format.
func New(level slog.Level, json bool) *slog.Logger {
	return NewWithWriter(os.Stdout, level, json)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithComponent returns a logger tagged with the component name.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	return l.With("component", component)
}
