package subscription

import (
	"context"
	"sync"
	"time"

	"github.com/eambler/cabracurado-backend/internal/localstore"
	"github.com/eambler/cabracurado-backend/internal/modules/client"
)

type localRepo struct {
	mu    sync.Mutex
	store *localstore.Store
}

// NewLocalRepository creates a subscription repository backed by the local
// JSON-file store.
func NewLocalRepository(store *localstore.Store) Repository {
	return &localRepo{store: store}
}

func (r *localRepo) loadPacks() ([]*Pack, error) {
	var packs []*Pack
	if err := r.store.Load(PackCollection, &packs); err != nil {
		return nil, err
	}
	return packs, nil
}

func (r *localRepo) loadSubscriptions() ([]*Subscription, error) {
	var subs []*Subscription
	if err := r.store.Load(Collection, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *localRepo) ListPacks(ctx context.Context, active *bool) ([]*Pack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	packs, err := r.loadPacks()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return packs, nil
	}
	filtered := packs[:0]
	for _, p := range packs {
		if p.Active == *active {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *localRepo) GetPackByID(ctx context.Context, id int64) (*Pack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	packs, err := r.loadPacks()
	if err != nil {
		return nil, err
	}
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrPackNotFound
}

func (r *localRepo) CreatePack(ctx context.Context, p *Pack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	packs, err := r.loadPacks()
	if err != nil {
		return err
	}
	var maxID int64
	for _, existing := range packs {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	packs = append(packs, p)
	return r.store.Save(PackCollection, packs)
}

func (r *localRepo) UpdatePack(ctx context.Context, id int64, patch PackPatch) (*Pack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	packs, err := r.loadPacks()
	if err != nil {
		return nil, err
	}
	for _, p := range packs {
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Active != nil {
			p.Active = *patch.Active
		}
		p.UpdatedAt = time.Now()
		if err := r.store.Save(PackCollection, packs); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, ErrPackNotFound
}

func (r *localRepo) DeletePack(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	packs, err := r.loadPacks()
	if err != nil {
		return err
	}
	kept := packs[:0]
	for _, p := range packs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.store.Save(PackCollection, kept)
}

func (r *localRepo) CreateSubscription(ctx context.Context, s *Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.loadSubscriptions()
	if err != nil {
		return err
	}
	var maxID int64
	for _, existing := range subs {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	s.ID = maxID + 1
	s.CreatedAt = time.Now()
	subs = append(subs, s)
	return r.store.Save(Collection, subs)
}

func (r *localRepo) ListSubscribers(ctx context.Context) ([]*Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.loadSubscriptions()
	if err != nil {
		return nil, err
	}
	packs, err := r.loadPacks()
	if err != nil {
		return nil, err
	}
	var clients []*client.Client
	if err := r.store.Load(client.Collection, &clients); err != nil {
		return nil, err
	}

	packNames := make(map[int64]string, len(packs))
	for _, p := range packs {
		packNames[p.ID] = p.Name
	}
	clientsByID := make(map[int64]*client.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ID] = c
	}

	result := make([]*Subscriber, 0, len(subs))
	for _, s := range subs {
		sub := &Subscriber{
			ID:        s.ID,
			Name:      "Unknown",
			Email:     "N/A",
			Plan:      "N/A",
			StartDate: s.StartDate,
			Status:    s.Status,
		}
		if c, ok := clientsByID[s.ClientID]; ok {
			sub.Name = c.Name
			sub.Email = c.Email
		}
		if name, ok := packNames[s.PackID]; ok {
			sub.Plan = name
		}
		result = append(result, sub)
	}
	return result, nil
}
