package httpapi

import (
	"context"
	"net/http"
	"strings"

	"colorsrest/internal/server/token"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// authMiddleware verifies the bearer token before the handler body runs.
// Missing, malformed or expired tokens are all rejected with 401.
func (r *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		authz := req.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			writeMessage(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(authz, "Bearer ")
		claims, err := r.services.Auth.VerifyToken(raw)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(req.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func getClaims(ctx context.Context) token.Claims {
	if v := ctx.Value(claimsContextKey); v != nil {
		if c, ok := v.(token.Claims); ok {
			return c
		}
	}
	return token.Claims{}
}
