package sendemail

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/resend-mcp/pkg/logger"
)

type invocationIDKey struct{}

// WithInvocationID stores the invocation id in ctx.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// InvocationID returns the invocation id stored in ctx, or "".
func InvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationIDKey{}).(string)
	return id
}

// InvocationIDExtractor adds invocation_id to log records emitted during a tool call.
func InvocationIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := InvocationID(ctx); id != "" {
			return slog.String("invocation_id", id), true
		}
		return slog.Attr{}, false
	}
}
