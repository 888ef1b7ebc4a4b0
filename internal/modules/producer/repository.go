package producer

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a producer id does not resolve.
var ErrNotFound = errors.New("producer not found")

// Repository defines data access for producers.
type Repository interface {
	// List returns producers, optionally filtered by the active flag.
	List(ctx context.Context, active *bool) ([]*Producer, error)

	// GetByID retrieves a single producer.
	GetByID(ctx context.Context, id int64) (*Producer, error)

	// Create persists a new producer, assigning its id and creation time.
	Create(ctx context.Context, p *Producer) error

	// Update merges a partial payload onto an existing producer.
	Update(ctx context.Context, id int64, patch Patch) (*Producer, error)

	// Delete removes a producer. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error
}
