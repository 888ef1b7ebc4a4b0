package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/producer"
)

type localRepo struct {
	mu    sync.Mutex
	store *localstore.Store
}

// NewLocalRepository creates a catalog repository backed by the local
// JSON-file store.
func NewLocalRepository(store *localstore.Store) Repository {
	return &localRepo{store: store}
}

func (r *localRepo) load() ([]*Product, error) {
	var products []*Product
	if err := r.store.Load(Collection, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// producerNames reads the producer collection and indexes names by id.
func (r *localRepo) producerNames() (map[int64]string, error) {
	var producers []*producer.Producer
	if err := r.store.Load(producer.Collection, &producers); err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(producers))
	for _, p := range producers {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (r *localRepo) enrich(products []*Product) error {
	names, err := r.producerNames()
	if err != nil {
		return err
	}
	for _, p := range products {
		if name, ok := names[p.ProducerID]; ok {
			p.ProducerName = name
		} else {
			p.ProducerName = UnknownProducer
		}
	}
	return nil
}

func (r *localRepo) List(ctx context.Context, f Filter) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}
	if err := r.enrich(products); err != nil {
		return nil, err
	}

	filtered := products[:0]
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		if f.Visible != nil && p.Visible != *f.Visible {
			continue
		}
		if f.ProducerID != 0 && p.ProducerID != f.ProducerID {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (r *localRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			if err := r.enrich([]*Product{p}); err != nil {
				return nil, err
			}
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	var maxID int64
	for _, existing := range products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	products = append(products, p)
	return r.store.Save(Collection, products)
}

func (r *localRepo) Update(ctx context.Context, id int64, patch Patch) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID != id {
			continue
		}
		applyPatch(p, patch)
		p.UpdatedAt = time.Now()
		if err := r.store.Save(Collection, products); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, ErrNotFound
}

func applyPatch(p *Product, patch Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SalePrice != nil {
		p.SalePrice = *patch.SalePrice
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	if patch.Visible != nil {
		p.Visible = *patch.Visible
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ProducerID != nil {
		p.ProducerID = *patch.ProducerID
	}
}

func (r *localRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.store.Save(Collection, kept)
}

func (r *localRepo) DecrementStock(ctx context.Context, id int64, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.ID != id {
			continue
		}
		p.Stock -= qty
		if p.Stock < 0 {
			p.Stock = 0
		}
		p.UpdatedAt = time.Now()
		return r.store.Save(Collection, products)
	}
	return ErrNotFound
}
