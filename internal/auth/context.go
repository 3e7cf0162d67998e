package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// principalContextKey is the context key for the authenticated user id.
	principalContextKey contextKey = "principal"
)

// ContextWithUserID stores the authenticated user id in the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, principalContextKey, userID)
}

// UserIDFromContext returns the authenticated user id.
// Returns empty string if not authenticated.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(principalContextKey).(string)
	return userID
}

// MustUserIDFromContext returns the authenticated user id.
// Panics if not present (use only when auth middleware has run).
func MustUserIDFromContext(ctx context.Context) string {
	userID := UserIDFromContext(ctx)
	if userID == "" {
		panic("principal not found - ensure auth middleware is applied")
	}
	return userID
}
