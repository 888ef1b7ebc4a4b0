package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/catalog"
	"github.com/eambler/cabracurado-backend/internal/modules/order"
)

// CheckoutInfo carries the customer details collected at checkout.
type CheckoutInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Comuna  string `json:"comuna"`
}

// Service manages session carts. Carts are persisted after every mutation
// and restored by session key; they never touch the main backing store until
// checkout materializes them into an order.
type Service struct {
	store    *localstore.Store
	products catalog.Repository
	orders   order.Service
}

// NewService creates a cart service.
func NewService(store *localstore.Store, products catalog.Repository, orders order.Service) *Service {
	return &Service{store: store, products: products, orders: orders}
}

func cartKey(session string) string { return "cart-" + session }

// Get restores the cart for a session; a new session yields an empty cart.
func (s *Service) Get(ctx context.Context, session string) (*Cart, error) {
	c := &Cart{}
	if err := s.store.Load(cartKey(session), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) save(session string, c *Cart) error {
	return s.store.Save(cartKey(session), c)
}

// Add puts one unit of a product in the cart. An existing line is
// incremented but never beyond the product's stock snapshot.
func (s *Service) Add(ctx context.Context, session string, productID int64) (*Cart, error) {
	c, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if p.Stock == 0 {
		return nil, ErrOutOfStock
	}

	if item := c.find(productID); item != nil {
		if item.Quantity >= p.Stock {
			return nil, ErrInsufficientStock
		}
		item.Quantity++
	} else {
		c.Items = append(c.Items, &Item{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.SalePrice,
			Category:  p.Category,
			Quantity:  1,
			Stock:     p.Stock,
		})
	}

	if err := s.save(session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity applies a signed delta to a line. Dropping to zero or below
// removes the line; exceeding the stock ceiling clamps the quantity and
// reports ErrInsufficientStock alongside the persisted cart.
func (s *Service) UpdateQuantity(ctx context.Context, session string, productID int64, delta int) (*Cart, error) {
	c, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	item := c.find(productID)
	if item == nil {
		return nil, ErrProductNotFound
	}

	item.Quantity += delta
	switch {
	case item.Quantity <= 0:
		c.remove(productID)
	case item.Quantity > item.Stock:
		item.Quantity = item.Stock
		if err := s.save(session, c); err != nil {
			return nil, err
		}
		return c, ErrInsufficientStock
	}

	if err := s.save(session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deletes a line unconditionally.
func (s *Service) Remove(ctx context.Context, session string, productID int64) (*Cart, error) {
	c, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}
	c.remove(productID)
	if err := s.save(session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Checkout validates the cart and hands it to order creation. The cart is
// cleared only after the order is durably created, never before, so a failed
// create loses nothing.
func (s *Service) Checkout(ctx context.Context, session string, info CheckoutInfo) (*order.Order, error) {
	c, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := c.Totals()
	if !totals.MeetsMinimum {
		return nil, ErrBelowMinimum
	}

	items := make([]order.CheckoutItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, order.CheckoutItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	o, err := s.orders.Create(ctx, order.CreateOrderRequest{
		Email:   info.Email,
		Name:    info.Name,
		Phone:   info.Phone,
		Address: info.Address,
		Comuna:  info.Comuna,
		Total:   totals.Total,
		Items:   items,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.store.Delete(cartKey(session)); err != nil {
		return nil, err
	}
	return o, nil
}
