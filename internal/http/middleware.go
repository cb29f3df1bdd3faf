package http

import (
	"net/http"
	"strings"

	"github.com/foldedhq/folded/internal/auth"
)

// Authenticator verifies the bearer token and injects the caller's session
// into the request context. Unauthenticated requests are rejected before any
// handler work happens.
func Authenticator(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			session, err := auth.VerifyToken(token, secret)
			if err != nil {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), session)))
		})
	}
}
