package auth

import (
	"context"
	"net/http"
	"strings"

	"becomebetter/internal/config"
)

// AuthCtx is a middleware that verifies the bearer token on the request and
// stores its claims in the request context. Requests without a valid token are
// rejected.
func AuthCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				rejectUnauthorizedRequest(w)
				return
			}

			claims, err := VerifyToken(strings.TrimPrefix(header, "Bearer "), config.Config.SigningSecret)
			if err != nil {
				rejectUnauthorizedRequest(w)
				return
			}

			ctxWithClaims := context.WithValue(r.Context(), "currentClaims", claims)
			next.ServeHTTP(w, r.WithContext(ctxWithClaims))
		})
	}
}

// GetClaimsFromRequest returns the verified Claims stored by AuthCtx. Only
// works with routes that implement the AuthCtx middleware.
func GetClaimsFromRequest(r *http.Request) (*Claims, error) {
	claims, ok := r.Context().Value("currentClaims").(*Claims)
	if !ok || claims == nil {
		return nil, InvalidTokenError
	}

	return claims, nil
}

// Helpers

func rejectUnauthorizedRequest(w http.ResponseWriter) {
	http.Error(w, "You must be authenticated to access this resource", http.StatusUnauthorized)
}
