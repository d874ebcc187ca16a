package cli

import (
	"context"
	"io"
	"log/slog"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger returns a copy of ctx holding the given logger. A command
// run with such a context logs to it instead of building its own.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom retrieves the logger from the context.
func loggerFrom(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	return l, ok
}
