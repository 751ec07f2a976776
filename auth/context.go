// Context utilities for carrying verified token claims through a request's
// context.Context from the middleware to the protected handlers.
package auth

import (
	"context"
)

// contextKey is a custom type for context keys, preventing collisions with
// keys set by other packages.
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// NewContextWithClaims returns a child context carrying the verified claims.
func NewContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the claims stored by the JWT middleware.
// The second return value reports whether claims were present.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}
