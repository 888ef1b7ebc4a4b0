package settings

import (
	"context"
	"errors"
	"fmt"
)

// PublicKeys are the entries the storefront may read without authentication.
var PublicKeys = []string{"instagram_url", "facebook_url", "whatsapp", "email_contacto"}

// Service defines configuration business logic.
type Service interface {
	// Get returns the value for key, or ErrNotFound when unset.
	Get(ctx context.Context, key string) (string, error)

	// GetAll resolves every given key; unset keys map to the empty string.
	GetAll(ctx context.Context, keys []string) (map[string]string, error)

	// Set upserts a single entry.
	Set(ctx context.Context, key, value string) error

	// SetAll upserts every entry in values.
	SetAll(ctx context.Context, values map[string]string) error
}

type service struct{ repo Repository }

// NewService creates a new settings service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Get(ctx context.Context, key string) (string, error) {
	return s.repo.Get(ctx, key)
}

func (s *service) GetAll(ctx context.Context, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := s.repo.Get(ctx, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				values[key] = ""
				continue
			}
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}

func (s *service) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	return s.repo.Set(ctx, key, value)
}

func (s *service) SetAll(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if err := s.Set(ctx, key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}
