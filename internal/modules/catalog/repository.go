package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product id does not resolve.
var ErrNotFound = errors.New("product not found")

// Repository defines data access for catalog products.
type Repository interface {
	// List returns products matching the filter, each enriched with its
	// producer's name at read time.
	List(ctx context.Context, f Filter) ([]*Product, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id int64) (*Product, error)

	// Create persists a new product, assigning its id and creation time.
	Create(ctx context.Context, p *Product) error

	// Update merges a partial payload onto an existing product.
	Update(ctx context.Context, id int64, patch Patch) (*Product, error)

	// Delete removes a product. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	// DecrementStock lowers a product's stock by qty, floored at zero.
	DecrementStock(ctx context.Context, id int64, qty int) error
}
