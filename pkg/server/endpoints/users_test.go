package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
)

func TestGetUser(t *testing.T) {
	t.Run("authenticated caller sees a profile", func(t *testing.T) {
		srv, stores := newTestServer(t)
		stores.Users.On("FindUserByID", "user-2").Return(&model.User{
			ID:       "user-2",
			Email:    "bob@example.com",
			Password: "$2a$10$secret",
			Role:     identity.RoleEmployer,
		}, nil)

		req := newRequest(t, "GET", "/users/user-2", nil, seekerIdentity("user-1"))
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "$2a$10$secret")
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		srv, _ := newTestServer(t)

		req := newRequest(t, "GET", "/users/user-2", nil, nil)
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		srv, stores := newTestServer(t)
		stores.Users.On("FindUserByID", "nope").Return(nil, store.ErrUserNotFound)

		req := newRequest(t, "GET", "/users/nope", nil, seekerIdentity("user-1"))
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	body := UserUpdateRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Bio:       "Backend developer.",
		Skills:    []string{"go", "postgres"},
	}

	t.Run("self update succeeds", func(t *testing.T) {
		srv, stores := newTestServer(t)
		stores.Users.On("FindUserByID", "user-1").Return(&model.User{
			ID:    "user-1",
			Email: "alice@example.com",
			Role:  identity.RoleJobSeeker,
		}, nil)
		stores.Users.On("UpdateUser", mock.AnythingOfType("*model.User")).Return(nil)

		req := newRequest(t, "PUT", "/users/user-1", body, seekerIdentity("user-1"))
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp UserResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "Backend developer.", resp.Bio)
		// Email and role are untouched by profile updates.
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Equal(t, identity.RoleJobSeeker, resp.Role)
	})

	t.Run("updating someone else is forbidden", func(t *testing.T) {
		srv, stores := newTestServer(t)
		stores.Users.On("FindUserByID", "user-2").Return(&model.User{
			ID:   "user-2",
			Role: identity.RoleJobSeeker,
		}, nil)

		req := newRequest(t, "PUT", "/users/user-2", body, seekerIdentity("user-1"))
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		stores.Users.AssertNotCalled(t, "UpdateUser", mock.Anything)
	})
}
