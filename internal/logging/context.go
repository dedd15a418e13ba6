package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerContextKey struct{}

// WithLogger returns a context carrying the given logger. Commands attach
// their logger here so helpers deep in the call chain log through the same
// instance.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the logger carried by ctx, falling back to the package
// default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	logger, ok := ctx.Value(loggerContextKey{}).(*log.Logger)
	if !ok || logger == nil {
		return Default()
	}
	return logger
}
