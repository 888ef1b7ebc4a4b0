package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/client"
)

type localRepo struct {
	mu    sync.Mutex
	store *localstore.Store
}

// NewLocalRepository creates an order repository backed by the local
// JSON-file store. Orders are stored with their items inline.
func NewLocalRepository(store *localstore.Store) Repository {
	return &localRepo{store: store}
}

func (r *localRepo) load() ([]*Order, error) {
	var orders []*Order
	if err := r.store.Load(Collection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *localRepo) Create(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return err
	}
	// Demo data historically numbers orders from 1001.
	maxID := int64(1000)
	for _, existing := range orders {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	o.ID = maxID + 1
	o.CreatedAt = time.Now()
	var itemID int64
	for _, item := range o.Items {
		itemID++
		item.ID = itemID
		item.OrderID = o.ID
	}
	orders = append(orders, o)
	return r.store.Save(Collection, orders)
}

func (r *localRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			if err := r.attachClientNames([]*Order{o}); err != nil {
				return nil, err
			}
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localRepo) ListFull(ctx context.Context) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	if err := r.attachClientNames(orders); err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *localRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.ID == id {
			o.Status = status
			return r.store.Save(Collection, orders)
		}
	}
	return ErrNotFound
}

func (r *localRepo) attachClientNames(orders []*Order) error {
	var clients []*client.Client
	if err := r.store.Load(client.Collection, &clients); err != nil {
		return err
	}
	names := make(map[int64]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	for _, o := range orders {
		if name, ok := names[o.ClientID]; ok {
			o.ClientName = name
		} else {
			o.ClientName = "Anonimo"
		}
	}
	return nil
}
