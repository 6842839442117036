package identity

import (
	"context"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request.
// It is established once by the authentication middleware, attached to
// the request context, and never mutated or persisted after that.
type Identity struct {
	// UserID is the resolved user record id.
	UserID string
	// Email is the token subject the identity was resolved from.
	Email string
	// Role is the account kind looked up from the user directory,
	// not taken from the token.
	Role Role
}

// Owns reports whether the identity's resolved id equals the given
// owner id. Ownership is structural equality on record ids, never an
// inference from request payloads.
func (i *Identity) Owns(ownerID string) bool {
	return ownerID != "" && i.UserID == ownerID
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
