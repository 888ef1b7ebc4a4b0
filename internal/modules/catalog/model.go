package catalog

import "time"

// Collection is the local-store key for products.
const Collection = "products"

// UnknownProducer is the producer name reported when the reference does not
// resolve.
const UnknownProducer = "Unknown"

// Category classifies a product.
type Category string

const (
	CategoryCheese    Category = "cheese"
	CategoryCuredMeat Category = "cured-meat"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	return c == CategoryCheese || c == CategoryCuredMeat
}

// Product is an item in the store catalog. Prices are tax-inclusive integer
// CLP amounts.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	SalePrice    int64     `json:"sale_price"`
	Cost         int64     `json:"cost"`
	Stock        int       `json:"stock"`
	Active       bool      `json:"active"`
	Visible      bool      `json:"visible_in_store"`
	ImageURL     string    `json:"image_url,omitempty"`
	Description  string    `json:"description,omitempty"`
	ProducerID   int64     `json:"producer_id,omitempty"`
	ProducerName string    `json:"producer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter holds optional equality filters for product listings. Filters are
// ANDed; a zero field places no constraint.
type Filter struct {
	Category   Category
	Active     *bool
	Visible    *bool
	ProducerID int64
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Name        *string   `json:"name"`
	Category    *Category `json:"category"`
	SalePrice   *int64    `json:"sale_price"`
	Cost        *int64    `json:"cost"`
	Stock       *int      `json:"stock"`
	Active      *bool     `json:"active"`
	Visible     *bool     `json:"visible_in_store"`
	ImageURL    *string   `json:"image_url"`
	Description *string   `json:"description"`
	ProducerID  *int64    `json:"producer_id"`
}
