package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/catalog"
	"github.com/eambler/cabracurado-backend/internal/modules/order"
)

type stubCatalog struct {
	products map[int64]*catalog.Product
}

func (s *stubCatalog) List(ctx context.Context, f catalog.Filter) ([]*catalog.Product, error) {
	return nil, nil
}

func (s *stubCatalog) GetByID(ctx context.Context, id int64) (*catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return p, nil
}

func (s *stubCatalog) Create(ctx context.Context, p *catalog.Product) error { return nil }

func (s *stubCatalog) Update(ctx context.Context, id int64, patch catalog.Patch) (*catalog.Product, error) {
	return nil, catalog.ErrNotFound
}

func (s *stubCatalog) Delete(ctx context.Context, id int64) error { return nil }

func (s *stubCatalog) DecrementStock(ctx context.Context, id int64, qty int) error { return nil }

type stubOrders struct {
	created []order.CreateOrderRequest
	err     error
}

func (s *stubOrders) Create(ctx context.Context, req order.CreateOrderRequest) (*order.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, req)
	return &order.Order{ID: 1, Number: "CC-1234", Total: req.Total, Status: order.StatusPending}, nil
}

func (s *stubOrders) Get(ctx context.Context, id int64) (*order.Order, error) {
	return nil, order.ErrNotFound
}

func (s *stubOrders) List(ctx context.Context) ([]*order.Order, error) { return nil, nil }

func (s *stubOrders) Process(ctx context.Context, id int64) (*order.Order, error) {
	return nil, order.ErrNotFound
}

func newTestService(t *testing.T, orders *stubOrders) *Service {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	products := &stubCatalog{products: map[int64]*catalog.Product{
		1: {ID: 1, Name: "Queso de cabra", Category: catalog.CategoryCheese, SalePrice: 5990, Stock: 3},
		2: {ID: 2, Name: "Longaniza artesanal", Category: catalog.CategoryCuredMeat, SalePrice: 4990, Stock: 10},
		3: {ID: 3, Name: "Agotado", Category: catalog.CategoryCheese, SalePrice: 8990, Stock: 0},
	}}
	if orders == nil {
		orders = &stubOrders{}
	}
	return NewService(store, products, orders)
}

func TestAddStartsLineAtOne(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	c, err := s.Add(ctx, "session", 1)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, int64(5990), c.Items[0].UnitPrice)
	assert.Equal(t, 3, c.Items[0].Stock)
}

func TestAddIncrementsUpToStock(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Add(ctx, "session", 1)
		require.NoError(t, err)
	}

	_, err := s.Add(ctx, "session", 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	c, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddUnknownProduct(t *testing.T) {
	s := newTestService(t, nil)

	_, err := s.Add(context.Background(), "session", 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddOutOfStock(t *testing.T) {
	s := newTestService(t, nil)

	_, err := s.Add(context.Background(), "session", 3)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestUpdateQuantityClampsToStock(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "session", 1)
	require.NoError(t, err)

	c, err := s.UpdateQuantity(ctx, "session", 1, 10)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	require.NotNil(t, c)
	assert.Equal(t, 3, c.Items[0].Quantity)

	// The clamped quantity was persisted.
	c, err = s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "session", 1)
	require.NoError(t, err)

	c, err := s.UpdateQuantity(ctx, "session", 1, -99)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestService(t, nil)
	ctx := context.Background()

	_, err := s.Add(ctx, "alice", 1)
	require.NoError(t, err)

	c, err := s.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestCheckoutBelowMinimumRejected(t *testing.T) {
	orders := &stubOrders{}
	s := newTestService(t, orders)
	ctx := context.Background()

	_, err := s.Add(ctx, "session", 1)
	require.NoError(t, err)

	_, err = s.Checkout(ctx, "session", CheckoutInfo{Email: "ana@example.cl"})
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Empty(t, orders.created)

	// The cart survives the rejection.
	c, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newTestService(t, nil)

	_, err := s.Checkout(context.Background(), "session", CheckoutInfo{Email: "ana@example.cl"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	orders := &stubOrders{}
	s := newTestService(t, orders)
	ctx := context.Background()

	// 2x5990 + 1x4990 = 16970 subtotal, + 5000 shipping = 21970.
	_, err := s.Add(ctx, "session", 1)
	require.NoError(t, err)
	_, err = s.UpdateQuantity(ctx, "session", 1, 1)
	require.NoError(t, err)
	_, err = s.Add(ctx, "session", 2)
	require.NoError(t, err)

	o, err := s.Checkout(ctx, "session", CheckoutInfo{
		Email:   "ana@example.cl",
		Name:    "Ana",
		Address: "Av. Italia 1234",
		Comuna:  "Providencia",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21970), o.Total)

	require.Len(t, orders.created, 1)
	req := orders.created[0]
	assert.Equal(t, "ana@example.cl", req.Email)
	assert.Equal(t, int64(21970), req.Total)
	require.Len(t, req.Items, 2)
	assert.Equal(t, 2, req.Items[0].Quantity)

	c, err := s.Get(ctx, "session")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	orders := &stubOrders{err: errors.New("database down")}
	s := newTestService(t, orders)
	ctx := context.Background()

	_, err := s.Add(ctx, "session", 2)
	require.NoError(t, err)
	_, err = s.UpdateQuantity(ctx, "session", 2, 3)
	require.NoError(t, err)

	_, err = s.Checkout(ctx, "session", CheckoutInfo{Email: "ana@example.cl"})
	require.Error(t, err)

	c, err := s.Get(ctx, "session")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
}
