package store

import (
	"errors"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when creating a user with an email that
	// is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// UsersStore abstracts user persistence. It doubles as the identity
// directory: the authentication middleware resolves token subjects
// through FindUserByEmail.
type UsersStore interface {
	// CreateUser inserts a new user. Returns ErrEmailTaken if the email
	// is already registered.
	CreateUser(user *model.User) error

	// FindUserByID fetches a user by record id.
	FindUserByID(id string) (*model.User, error)

	// FindUserByEmail fetches a user by email, case-insensitively.
	FindUserByEmail(email string) (*model.User, error)

	// UpdateUser persists changes to an existing user.
	UpdateUser(user *model.User) error
}
