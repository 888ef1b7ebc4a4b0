package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eambler/cabracurado-backend/internal/localstore"
)

type localRepo struct {
	mu    sync.Mutex
	store *localstore.Store
}

// NewLocalRepository creates a client repository backed by the local
// JSON-file store.
func NewLocalRepository(store *localstore.Store) Repository {
	return &localRepo{store: store}
}

func (r *localRepo) load() ([]*Client, error) {
	var clients []*Client
	if err := r.store.Load(Collection, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *localRepo) GetByEmail(ctx context.Context, email string) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *localRepo) Create(ctx context.Context, c *Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.load()
	if err != nil {
		return err
	}
	var maxID int64
	for _, existing := range clients {
		if existing.Email == c.Email {
			return fmt.Errorf("%w: %s", ErrEmailTaken, c.Email)
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c.ID = maxID + 1
	c.CreatedAt = time.Now()
	clients = append(clients, c)
	return r.store.Save(Collection, clients)
}
