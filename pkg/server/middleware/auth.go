package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/novatech/blog-api/pkg/authn"
	"github.com/novatech/blog-api/pkg/identity"
	"github.com/novatech/blog-api/pkg/model"
)

const bearerPrefix = "Bearer "

// TokenAuthenticator is middleware that validates bearer tokens
type TokenAuthenticator struct {
	issuer *authn.Issuer
}

// NewTokenAuthenticator creates a new bearer token authenticator middleware
func NewTokenAuthenticator(issuer *authn.Issuer) *TokenAuthenticator {
	return &TokenAuthenticator{issuer: issuer}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// attaches the caller's identity to the request context.
func (t *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			unauthorized(w, r, "Authorization header missing")
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			unauthorized(w, r, "Malformed authorization header")
			return
		}

		claims, err := t.issuer.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			unauthorized(w, r, "Invalid or expired token")
			return
		}

		role, err := model.RoleString(claims.Role)
		if err != nil {
			unauthorized(w, r, "Invalid or expired token")
			return
		}

		id := &identity.Identity{
			Username:  claims.Subject,
			Role:      role,
			IssuedAt:  claims.IssuedAt.Time,
			ExpiresAt: claims.ExpiresAt.Time,
		}
		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose identity lacks the ADMIN role.
// It must run after the token authenticator.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			unauthorized(w, r, "Authorization required")
			return
		}
		if !id.IsAdmin() {
			writeError(w, r, http.StatusForbidden, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	writeError(w, r, http.StatusUnauthorized, message)
}

func writeError(w http.ResponseWriter, r *http.Request, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    code,
		"error":     http.StatusText(code),
		"message":   message,
		"path":      r.URL.Path,
	})
}
