package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when sign-in fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when signing up an email that already has an
	// account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNoSession is returned when a token does not resolve to an active
	// session.
	ErrNoSession = errors.New("no active session")
)

// Service defines the interface for authentication business logic.
type Service interface {
	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, email, password, name string) (*Credentials, error)

	// SignIn validates credentials and issues a session token.
	SignIn(ctx context.Context, email, password string) (*Credentials, error)

	// SignOut invalidates the session for token. Unknown tokens are ignored.
	SignOut(ctx context.Context, token string) error

	// CurrentUser resolves the active session's user, or ErrNoSession.
	CurrentUser(ctx context.Context, token string) (*User, error)
}
