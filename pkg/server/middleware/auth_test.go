package middleware

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
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/token"
)

type mockUsersStore struct {
	mock.Mock
}

func (m *mockUsersStore) CreateUser(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUsersStore) FindUserByID(id string) (*model.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsersStore) FindUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsersStore) UpdateUser(user *model.User) error {
	return m.Called(user).Error(0)
}

func identityCapturingHandler(captured **identity.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := identity.Get(r.Context()); ok {
			*captured = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewService([]byte("test-key"), 0)
	issued, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	users := &mockUsersStore{}
	users.On("FindUserByEmail", "alice@example.com").Return(&model.User{
		ID:    "user-1",
		Email: "alice@example.com",
		Role:  identity.RoleJobSeeker,
	}, nil)

	var captured *identity.Identity
	handler := NewAuthenticator(tokens, users).Middleware(identityCapturingHandler(&captured))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+issued)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "user-1", captured.UserID)
	assert.Equal(t, "alice@example.com", captured.Email)
	assert.Equal(t, identity.RoleJobSeeker, captured.Role)
}

func TestMiddleware_MissingAuthorization(t *testing.T) {
	tokens := token.NewService([]byte("test-key"), 0)

	var captured *identity.Identity
	handler := NewAuthenticator(tokens, &mockUsersStore{}).Middleware(identityCapturingHandler(&captured))

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// The request proceeds anonymous; rejection is the authorizer's job.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured)
}

func TestMiddleware_BadTokens(t *testing.T) {
	tokens := token.NewService([]byte("test-key"), 0)
	otherKey := token.NewService([]byte("other-key"), 0)
	foreign, err := otherKey.Issue("alice@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"not a bearer scheme", `Token token="xyz"`},
		{"malformed token", "Bearer not.a.jwt"},
		{"wrong signing key", "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *identity.Identity
			handler := NewAuthenticator(tokens, &mockUsersStore{}).Middleware(identityCapturingHandler(&captured))

			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Nil(t, captured)
		})
	}
}

func TestMiddleware_UnknownSubject(t *testing.T) {
	tokens := token.NewService([]byte("test-key"), 0)
	issued, err := tokens.Issue("ghost@example.com")
	require.NoError(t, err)

	users := &mockUsersStore{}
	users.On("FindUserByEmail", "ghost@example.com").Return(nil, store.ErrUserNotFound)

	var captured *identity.Identity
	handler := NewAuthenticator(tokens, users).Middleware(identityCapturingHandler(&captured))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+issued)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured)
}
