// Package cart implements the session shopping cart: stock-capped lines,
// shipping and discount thresholds, and the checkout hand-off to order
// creation.
package cart

import (
	"errors"

	"github.com/eambler/cabracurado-backend/internal/modules/catalog"
)

// Pricing thresholds, in integer CLP.
const (
	// FreeShippingOver is the subtotal at which shipping becomes free.
	// A configurable envio_gratis_desde key exists in the configuration
	// store but the cart has always used this literal; see DESIGN.md.
	FreeShippingOver = 50000

	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee = 5000

	// MinimumPurchase is the smallest subtotal accepted at checkout.
	MinimumPurchase = 15000
)

var (
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrOutOfStock is returned when adding a product with zero stock.
	ErrOutOfStock = errors.New("product out of stock")
	// ErrInsufficientStock is returned when a quantity would exceed the
	// product's stock ceiling.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBelowMinimum is returned when the subtotal is below the minimum
	// purchase.
	ErrBelowMinimum = errors.New("subtotal below minimum purchase")
)

// Item is one cart line. Name, price, category and stock are snapshots taken
// when the product was added.
type Item struct {
	ProductID int64            `json:"product_id"`
	Name      string           `json:"name"`
	UnitPrice int64            `json:"unit_price"`
	Category  catalog.Category `json:"category"`
	Quantity  int              `json:"quantity"`
	Stock     int              `json:"stock"`
}

// Cart is an ordered list of lines owned by one browser session.
type Cart struct {
	Items []*Item `json:"items"`
}

// Totals is the computed pricing summary of a cart.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
	// MissingForFreeShipping is how much more the customer must add to
	// reach free shipping; zero once reached.
	MissingForFreeShipping int64 `json:"missing_for_free_shipping"`
	// MeetsMinimum reports whether checkout is allowed at this subtotal.
	MeetsMinimum bool `json:"meets_minimum"`
}

// Subtotal sums unit price times quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.UnitPrice * int64(item.Quantity)
	}
	return sum
}

// Totals computes the pricing summary: free shipping at or above the
// threshold, a flat fee below it.
func (c *Cart) Totals() Totals {
	subtotal := c.Subtotal()
	var shipping int64
	var missing int64
	if subtotal < FreeShippingOver {
		shipping = FlatShippingFee
		missing = FreeShippingOver - subtotal
	}
	return Totals{
		Subtotal:               subtotal,
		Shipping:               shipping,
		Total:                  subtotal + shipping,
		MissingForFreeShipping: missing,
		MeetsMinimum:           subtotal >= MinimumPurchase,
	}
}

func (c *Cart) find(productID int64) *Item {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item
		}
	}
	return nil
}

func (c *Cart) remove(productID int64) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}
