package tenant

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithTenant returns a context carrying the given tenant identifier.
func WithTenant(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext retrieves the tenant identifier from the context.
// Returns "", false if the request declared no tenant.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// MustFromContext retrieves the tenant identifier from the context.
// Panics if no tenant is set. Use this only in handlers that cannot
// function without a tenant.
func MustFromContext(ctx context.Context) string {
	id, ok := FromContext(ctx)
	if !ok {
		panic("tenant: no tenant in context")
	}
	return id
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// tenant identifier to log records when one is set.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := FromContext(ctx); ok {
			return slog.String("tenant_id", id), true
		}
		return slog.Attr{}, false
	}
}
