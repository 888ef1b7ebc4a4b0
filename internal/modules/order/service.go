package order

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/eambler/cabracurado-backend/internal/modules/catalog"
	"github.com/eambler/cabracurado-backend/internal/modules/client"
)

// numberPrefix is the literal prefix of every order number.
const numberPrefix = "CC-"

// Service defines order business logic.
type Service interface {
	// Create materializes a cart into a persisted order: it resolves or
	// creates the client, then stores the order header and one item row per
	// cart line as a single unit.
	Create(ctx context.Context, req CreateOrderRequest) (*Order, error)

	// Get retrieves an order with its items.
	Get(ctx context.Context, id int64) (*Order, error)

	// List returns all orders for the admin view, newest first.
	List(ctx context.Context) ([]*Order, error)

	// Process completes a pending order, decrementing product stock by each
	// line quantity (floored at zero). Processing an already-completed order
	// is rejected with ErrAlreadyProcessed so stock is never decremented
	// twice.
	Process(ctx context.Context, id int64) (*Order, error)
}

type service struct {
	repo     Repository
	clients  client.Service
	products catalog.Repository
}

// NewService creates a new order service.
func NewService(repo Repository, clients client.Service, products catalog.Repository) Service {
	return &service{repo: repo, clients: clients, products: products}
}

func (s *service) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	var subtotal int64
	items := make([]*Item, 0, len(req.Items))
	for _, ci := range req.Items {
		if ci.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %d", ci.ProductID)
		}
		lineSubtotal := ci.UnitPrice * int64(ci.Quantity)
		subtotal += lineSubtotal
		items = append(items, &Item{
			ProductID:   ci.ProductID,
			ProductName: ci.Name,
			Quantity:    ci.Quantity,
			UnitPrice:   ci.UnitPrice,
			Subtotal:    lineSubtotal,
		})
	}

	c, err := s.clients.GetOrCreate(ctx, &client.Client{
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Comuna:  req.Comuna,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}

	o := &Order{
		ClientID: c.ID,
		Number:   newOrderNumber(),
		Subtotal: subtotal,
		Shipping: req.Total - subtotal,
		Total:    req.Total,
		Address:  req.Address,
		Comuna:   req.Comuna,
		Status:   StatusPending,
		Items:    items,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.ListFull(ctx)
}

func (s *service) Process(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == StatusCompleted {
		return nil, ErrAlreadyProcessed
	}

	for _, item := range o.Items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("decrement stock for product %d: %w", item.ProductID, err)
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return nil, err
	}
	o.Status = StatusCompleted
	return o, nil
}

// newOrderNumber builds a human-readable order number: the CC- prefix plus a
// random 4-digit suffix. Uniqueness is enforced by the storage layer, not by
// construction.
func newOrderNumber() string {
	return fmt.Sprintf("%s%d", numberPrefix, 1000+rand.Intn(9000))
}
