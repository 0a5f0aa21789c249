package store

import (
	"errors"

	"github.com/novatech/blog-api/pkg/model"
)

// ErrUserNotFound is returned when a user doesn't exist
var ErrUserNotFound = errors.New("user not found")

// User represents an account that can authenticate
type User struct {
	ID           uint
	Username     string
	PasswordHash string
	Role         model.Role
}

// UsersStore abstracts user storage operations
type UsersStore interface {
	// FetchUserByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user doesn't exist.
	FetchUserByUsername(username string) (*User, error)

	// CreateUser creates a user with an already-hashed password.
	CreateUser(username, passwordHash string, role model.Role) (*User, error)

	// CountUsers returns the total number of users.
	CountUsers() (int64, error)
}
