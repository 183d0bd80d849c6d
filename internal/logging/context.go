package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKeyType struct{}

//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerKey = loggerKeyType{}

// WithLogger attaches a logger to the context. Commands attach their
// configured logger once so deeper layers do not need it threaded through
// every signature.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, falling back to the
// package default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	logger, ok := ctx.Value(loggerKey).(*log.Logger)
	if !ok || logger == nil {
		return Default()
	}
	return logger
}
