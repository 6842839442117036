// Package identity provides the authenticated identity for job portal requests.
//
// An Identity is the result of verifying a bearer token and resolving its
// subject against the user directory. It is request-scoped: the
// authentication middleware attaches it to the request context and nothing
// downstream mutates it.
//
// # Basic Usage
//
//	// Attach after successful token verification + user lookup
//	ctx = identity.Set(ctx, &identity.Identity{
//	    UserID: user.ID,
//	    Email:  user.Email,
//	    Role:   user.Role,
//	})
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//
// # Identity vs Token
//
// The token package handles parsing and validating the raw bearer token.
// The identity package builds on that: the token only proves the subject,
// while the Role and UserID always come from the stored user record. A
// token alone never carries authority over a role.
package identity
