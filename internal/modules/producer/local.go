package producer

import (
	"context"
	"sync"
	"time"

	"github.com/eambler/cabracurado-backend/internal/localstore"
)

type localRepo struct {
	mu    sync.Mutex
	store *localstore.Store
}

// NewLocalRepository creates a producer repository backed by the local
// JSON-file store.
func NewLocalRepository(store *localstore.Store) Repository {
	return &localRepo{store: store}
}

func (r *localRepo) load() ([]*Producer, error) {
	var producers []*Producer
	if err := r.store.Load(Collection, &producers); err != nil {
		return nil, err
	}
	return producers, nil
}

func (r *localRepo) List(ctx context.Context, active *bool) ([]*Producer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	producers, err := r.load()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return producers, nil
	}
	filtered := producers[:0]
	for _, p := range producers {
		if p.Active == *active {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *localRepo) GetByID(ctx context.Context, id int64) (*Producer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	producers, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range producers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localRepo) Create(ctx context.Context, p *Producer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	producers, err := r.load()
	if err != nil {
		return err
	}
	var maxID int64
	for _, existing := range producers {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	producers = append(producers, p)
	return r.store.Save(Collection, producers)
}

func (r *localRepo) Update(ctx context.Context, id int64, patch Patch) (*Producer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	producers, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range producers {
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.Specialty != nil {
			p.Specialty = *patch.Specialty
		}
		if patch.History != nil {
			p.History = *patch.History
		}
		if patch.Active != nil {
			p.Active = *patch.Active
		}
		p.UpdatedAt = time.Now()
		if err := r.store.Save(Collection, producers); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, ErrNotFound
}

func (r *localRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	producers, err := r.load()
	if err != nil {
		return err
	}
	kept := producers[:0]
	for _, p := range producers {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.store.Save(Collection, kept)
}
