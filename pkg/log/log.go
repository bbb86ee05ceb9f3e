// Package log carries a zap logger through a context.Context.
package log

import (
	"context"

	"go.uber.org/zap"
)

type loggerContextKey int

const defaultLoggerContextKey loggerContextKey = 0

// IntoContext returns a child context carrying logger.
func IntoContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, defaultLoggerContextKey, logger)
}

// FromContext returns the logger stored in ctx, falling back to the
// global logger when none was set.
func FromContext(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(defaultLoggerContextKey).(*zap.Logger)
	if !ok {
		return zap.L()
	}
	return logger
}
