// Package identity carries the authenticated principal through a request's
// context once the token middleware has verified it.
package identity

import (
	"context"
	"time"

	"github.com/novatech/blog-api/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request. The role is
// taken from a verified token, so handlers may trust it without re-checking.
type Identity struct {
	Username  string
	Role      model.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin returns true if the identity carries the ADMIN role.
func (i *Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
