package order

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eambler/cabracurado-backend/internal/modules/catalog"
	"github.com/eambler/cabracurado-backend/internal/modules/client"
)

type stubRepo struct {
	orders map[int64]*Order
	nextID int64
}

func newStubRepo() *stubRepo { return &stubRepo{orders: map[int64]*Order{}, nextID: 1} }

func (r *stubRepo) Create(ctx context.Context, o *Order) error {
	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = o
	return nil
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (r *stubRepo) ListFull(ctx context.Context) ([]*Order, error) {
	out := make([]*Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *stubRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

type stubClients struct{ created int }

func (s *stubClients) GetOrCreate(ctx context.Context, c *client.Client) (*client.Client, error) {
	s.created++
	c.ID = 7
	return c, nil
}

type stubProducts struct {
	stock map[int64]int
}

func (s *stubProducts) List(ctx context.Context, f catalog.Filter) ([]*catalog.Product, error) {
	return nil, nil
}

func (s *stubProducts) GetByID(ctx context.Context, id int64) (*catalog.Product, error) {
	return nil, catalog.ErrNotFound
}

func (s *stubProducts) Create(ctx context.Context, p *catalog.Product) error { return nil }

func (s *stubProducts) Update(ctx context.Context, id int64, patch catalog.Patch) (*catalog.Product, error) {
	return nil, catalog.ErrNotFound
}

func (s *stubProducts) Delete(ctx context.Context, id int64) error { return nil }

func (s *stubProducts) DecrementStock(ctx context.Context, id int64, qty int) error {
	s.stock[id] -= qty
	if s.stock[id] < 0 {
		s.stock[id] = 0
	}
	return nil
}

func newTestService() (Service, *stubRepo, *stubClients, *stubProducts) {
	repo := newStubRepo()
	clients := &stubClients{}
	products := &stubProducts{stock: map[int64]int{1: 10, 2: 5}}
	return NewService(repo, clients, products), repo, clients, products
}

func testRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Email:   "ana@example.cl",
		Name:    "Ana",
		Address: "Av. Italia 1234",
		Comuna:  "Providencia",
		Total:   21970,
		Items: []CheckoutItem{
			{ProductID: 1, Name: "Queso de cabra", UnitPrice: 5990, Quantity: 2},
			{ProductID: 2, Name: "Longaniza artesanal", UnitPrice: 4990, Quantity: 1},
		},
	}
}

func TestCreateComputesTotals(t *testing.T) {
	s, _, clients, _ := newTestService()

	o, err := s.Create(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(16970), o.Subtotal)
	assert.Equal(t, int64(5000), o.Shipping)
	assert.Equal(t, int64(21970), o.Total)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, int64(7), o.ClientID)
	assert.Equal(t, 1, clients.created)

	require.Len(t, o.Items, 2)
	assert.Equal(t, int64(11980), o.Items[0].Subtotal)
}

func TestCreateOrderNumberFormat(t *testing.T) {
	s, _, _, _ := newTestService()

	o, err := s.Create(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CC-\d{4}$`), o.Number)
}

func TestCreateValidation(t *testing.T) {
	s, _, _, _ := newTestService()
	ctx := context.Background()

	req := testRequest()
	req.Items = nil
	_, err := s.Create(ctx, req)
	assert.Error(t, err)

	req = testRequest()
	req.Email = ""
	_, err = s.Create(ctx, req)
	assert.Error(t, err)

	req = testRequest()
	req.Items[0].Quantity = 0
	_, err = s.Create(ctx, req)
	assert.Error(t, err)
}

func TestProcessDecrementsStockOnce(t *testing.T) {
	s, _, _, products := newTestService()
	ctx := context.Background()

	created, err := s.Create(ctx, testRequest())
	require.NoError(t, err)

	o, err := s.Process(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, o.Status)
	assert.Equal(t, 8, products.stock[1])
	assert.Equal(t, 4, products.stock[2])

	// A second process attempt is rejected and stock is untouched.
	_, err = s.Process(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Equal(t, 8, products.stock[1])
	assert.Equal(t, 4, products.stock[2])
}

func TestProcessUnknownOrder(t *testing.T) {
	s, _, _, _ := newTestService()

	_, err := s.Process(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
