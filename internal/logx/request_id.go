package logx

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type requestIDContextKey struct{}

// NormalizeRequestID keeps a caller supplied UUIDv4 and replaces anything else.
func NormalizeRequestID(value string) string {
	parsed, err := uuid.Parse(value)
	if err == nil && parsed.Version() == 4 {
		return value
	}
	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}

// FromContext decorates logger with the request id carried by ctx, if any.
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if id := RequestIDFromContext(ctx); id != "" {
		return logger.With("request_id", id)
	}
	return logger
}
