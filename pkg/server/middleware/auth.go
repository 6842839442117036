package middleware

import (
	"log"
	"net/http"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/token"
)

// Authenticator is middleware that resolves bearer tokens into a caller
// identity. It never rejects a request itself: requests with a missing,
// malformed, or stale token simply proceed anonymous, and the authorization
// layer decides what an anonymous caller may do.
type Authenticator struct {
	Tokens *token.Service
	Users  store.UsersStore
}

// NewAuthenticator creates a new authenticator middleware
func NewAuthenticator(tokens *token.Service, users store.UsersStore) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users}
}

// Middleware returns an HTTP middleware that attaches the caller identity
// to the request context when a valid bearer token is presented.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := token.ExtractBearer(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := a.Tokens.Verify(raw)
		if err != nil {
			log.Printf("Rejected bearer token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.Users.FindUserByEmail(claims.Subject)
		if err != nil {
			log.Printf("Token subject %q has no matching user: %v", claims.Subject, err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := identity.Set(r.Context(), &identity.Identity{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
