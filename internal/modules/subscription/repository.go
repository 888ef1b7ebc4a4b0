package subscription

import (
	"context"
	"errors"
)

// ErrPackNotFound is returned when a pack id does not resolve.
var ErrPackNotFound = errors.New("pack not found")

// Repository defines data access for packs and subscriptions.
type Repository interface {
	// ListPacks returns packs, optionally filtered by the active flag.
	ListPacks(ctx context.Context, active *bool) ([]*Pack, error)

	// GetPackByID retrieves a single pack.
	GetPackByID(ctx context.Context, id int64) (*Pack, error)

	// CreatePack persists a new pack, assigning its id and creation time.
	CreatePack(ctx context.Context, p *Pack) error

	// UpdatePack merges a partial payload onto an existing pack.
	UpdatePack(ctx context.Context, id int64, patch PackPatch) (*Pack, error)

	// DeletePack removes a pack. Deleting an absent id is not an error.
	DeletePack(ctx context.Context, id int64) error

	// CreateSubscription persists a new subscription.
	CreateSubscription(ctx context.Context, s *Subscription) error

	// ListSubscribers returns all subscriptions joined with client name,
	// email and pack name.
	ListSubscribers(ctx context.Context) ([]*Subscriber, error)
}
