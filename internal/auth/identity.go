// internal/auth/identity.go
package auth

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated subject of a request. A nil *Identity is an
// anonymous caller.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Authenticated reports whether the identity names a signed-in user.
func (i *Identity) Authenticated() bool {
	return i != nil && i.ID != uuid.Nil
}

// SubjectID returns the user id as a string, or "" for anonymous callers.
func (i *Identity) SubjectID() string {
	if !i.Authenticated() {
		return ""
	}
	return i.ID.String()
}

type identityKey struct{}

// WithIdentity stores the caller identity in ctx.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity placed by the auth middleware, or
// nil when the request is anonymous.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
