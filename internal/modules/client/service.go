package client

import (
	"context"
	"errors"
	"fmt"
)

// Service defines client business logic.
type Service interface {
	// GetOrCreate resolves a client by email, creating it from the given
	// record when absent. Calling repeatedly with the same email always
	// returns the same client; an existing record is returned as-is.
	GetOrCreate(ctx context.Context, c *Client) (*Client, error)
}

type service struct{ repo Repository }

// NewService creates a new client service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetOrCreate(ctx context.Context, c *Client) (*Client, error) {
	if c.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	existing, err := s.repo.GetByEmail(ctx, c.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		// Two sessions can race on first contact; the uniqueness constraint
		// decides the winner and the loser re-reads.
		if errors.Is(err, ErrEmailTaken) {
			return s.repo.GetByEmail(ctx, c.Email)
		}
		return nil, err
	}
	return c, nil
}
