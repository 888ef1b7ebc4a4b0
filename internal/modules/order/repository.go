package order

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when an order id does not resolve.
	ErrNotFound = errors.New("order not found")
	// ErrAlreadyProcessed is returned when processing an order that has
	// already been completed.
	ErrAlreadyProcessed = errors.New("order already processed")
)

// Repository defines data access for orders.
type Repository interface {
	// Create persists the order and all its items as one unit.
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id int64) (*Order, error)

	// ListFull returns all orders joined with the client name, newest first.
	ListFull(ctx context.Context) ([]*Order, error)

	// UpdateStatus advances an order to a new status.
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
