// ABOUTME: Bearer-secret authorization for the seed API.
// ABOUTME: An empty secret leaves the API open, matching local development setups.

package seedapi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	apierrors "github.com/2389/demoseed/internal/errors"
)

// RequireSecret rejects requests whose Authorization header is not
// "Bearer <secret>". With an empty secret every request passes.
func RequireSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}
			token := extractToken(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				apierrors.WriteError(w, http.StatusUnauthorized, apierrors.ErrUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(authHeader string) string {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
