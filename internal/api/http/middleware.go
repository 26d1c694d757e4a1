package http

import (
	"context"
	"net/http"
	"strings"

	"vrms-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// AuthMiddleware validates the bearer token and stores the claims on the
// request context. Refresh tokens are rejected here; only access tokens
// may call the API.
func AuthMiddleware(tm security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tm.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if claims.Type != security.TokenTypeAccess {
				respondError(w, http.StatusUnauthorized, "access token required")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the authenticated user's claims, or nil on
// unauthenticated routes.
func ClaimsFromContext(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims
}
