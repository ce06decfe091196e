package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/strikbal/rating-backend/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// ExtractToken pulls the bearer credential from the request, checking the
// X-Authorization header, the Authorization header, then the token query
// parameter. The "Bearer " prefix is optional and case-insensitive.
func ExtractToken(r *http.Request) string {
	header := r.Header.Get("X-Authorization")
	if header == "" {
		header = r.Header.Get("Authorization")
	}
	if header != "" {
		token := strings.TrimSpace(header)
		if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		return token
	}

	return r.URL.Query().Get("token")
}

// Auth resolves the bearer token to a caller identity and injects it into
// the request context. Missing or invalid tokens get a 401.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			identity, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token rejected: %v", err)
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects authenticated non-admin callers with a 403. It must
// run inside Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok || !identity.IsAdmin {
			writeError(w, http.StatusForbidden, "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetIdentity(ctx context.Context) (*service.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*service.Identity)
	return identity, ok
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
