package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/filesession/pkg/logger"
)

type contextKey struct{}

// WithContext returns a copy of ctx carrying the request id.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request id stored by the middleware, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// LoggerExtractor adds the request id to every record logged with a request
// context. Pass it to logger.WithContextExtractors.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := FromContext(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}
