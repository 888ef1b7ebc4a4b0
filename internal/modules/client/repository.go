package client

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no client exists for an email.
	ErrNotFound = errors.New("client not found")
	// ErrEmailTaken is returned when an insert loses the race on the email
	// uniqueness constraint.
	ErrEmailTaken = errors.New("client email already exists")
)

// Repository defines data access for clients.
type Repository interface {
	// GetByEmail retrieves a client by its unique email.
	GetByEmail(ctx context.Context, email string) (*Client, error)

	// Create persists a new client, assigning its id and creation time.
	// A duplicate email yields ErrEmailTaken.
	Create(ctx context.Context, c *Client) error
}
