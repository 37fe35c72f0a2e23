// Package ctxlog hands the driller run's logger to code that only receives
// a context.Context, such as the solve and serve paths of internal/app.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

// WithLogger returns ctx carrying the logger built from the log settings.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the run's logger. Callers outside a run, such as
// tests driving app.Solve with a bare context, get slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(key{}).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}
