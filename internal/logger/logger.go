// Package logger provides invocation-scoped logging: every watermark call gets its own UUID
package logger

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

type invocationLogger struct{}

// WithInvocation - присваивает вызову UUID и кладёт логгер с ним в контекст
func WithInvocation(ctx context.Context, source string) context.Context {
	logger := zlog.Logger.With().
		Str("invocation_id", uuid.NewString()).
		Str("source", source).
		Logger()

	return context.WithValue(ctx, invocationLogger{}, logger)
}

// HasInvocation reports whether ctx already carries an invocation logger
func HasInvocation(ctx context.Context) bool {
	_, ok := ctx.Value(invocationLogger{}).(zlog.Zerolog)
	return ok
}

// FromContext extracts logger from context - used in service-layer
func FromContext(ctx context.Context) zlog.Zerolog {
	if l, ok := ctx.Value(invocationLogger{}).(zlog.Zerolog); ok {
		return l
	}
	return zlog.Logger
}
