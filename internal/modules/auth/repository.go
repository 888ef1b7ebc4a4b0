package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when an account does not exist.
var ErrUserNotFound = errors.New("user not found")

// Repository defines data access for accounts and sessions.
type Repository interface {
	// CreateUser persists a new account. A duplicate email yields
	// ErrEmailTaken.
	CreateUser(ctx context.Context, u *User) error

	// GetUserByEmail retrieves an account by email.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID retrieves an account by id.
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetRole returns the back-office role for an email, or "" when the
	// email is not a system user.
	GetRole(ctx context.Context, email string) (string, error)

	// CreateSession records an issued token.
	CreateSession(ctx context.Context, s *Session) error

	// DeleteSession removes a token. Deleting an absent token is not an
	// error.
	DeleteSession(ctx context.Context, token string) error

	// SessionExists reports whether a token is still active.
	SessionExists(ctx context.Context, token string) (bool, error)
}
