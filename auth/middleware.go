// HTTP middleware gating protected routes behind bearer-token verification.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/authsvc-go/config"
)

// invalidTokenBody is the exact plain-text 401 body clients string-match
// on, so it bypasses the JSON error envelope.
const invalidTokenBody = "Invalid JWT Token"

// JWTMiddleware verifies the bearer token from the Authorization header and
// attaches the resolved claims to the request context. Every failure path
// short-circuits with a 401 before the protected handler runs; the
// middleware never calls the next handler on failure.
func JWTMiddleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeInvalidToken(w)
				return
			}

			// Expected shape: "Bearer <token>".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				writeInvalidToken(w)
				return
			}

			claims, err := VerifyToken(parts[1], cfg)
			if err != nil {
				writeInvalidToken(w)
				return
			}

			ctx := NewContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeInvalidToken(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(invalidTokenBody))
}
