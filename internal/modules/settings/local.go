package settings

import (
	"context"
	"sync"

	"github.com/eambler/cabracurado-backend/internal/localstore"
)

type localRepo struct {
	mu    sync.Mutex
	store *localstore.Store
}

// NewLocalRepository creates a settings repository backed by the local
// JSON-file store.
func NewLocalRepository(store *localstore.Store) Repository {
	return &localRepo{store: store}
}

func (r *localRepo) load() (map[string]string, error) {
	values := map[string]string{}
	if err := r.store.Load(Collection, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *localRepo) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (r *localRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return err
	}
	values[key] = value
	return r.store.Save(Collection, values)
}
