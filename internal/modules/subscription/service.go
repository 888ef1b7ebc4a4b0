package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/eambler/cabracurado-backend/internal/modules/client"
)

// Service defines pack and subscription business logic.
type Service interface {
	ListPacks(ctx context.Context, active *bool) ([]*Pack, error)
	CreatePack(ctx context.Context, req CreatePackRequest) (*Pack, error)
	UpdatePack(ctx context.Context, id int64, patch PackPatch) (*Pack, error)
	DeletePack(ctx context.Context, id int64) error

	// Subscribe enrolls an email in a pack, creating the client on first
	// contact. New subscriptions start active.
	Subscribe(ctx context.Context, req SubscribeRequest) (*Subscription, error)

	ListSubscribers(ctx context.Context) ([]*Subscriber, error)
}

// CreatePackRequest holds the data for creating a pack.
type CreatePackRequest struct {
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

// SubscribeRequest holds the data for enrolling a customer.
type SubscribeRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	PackID int64  `json:"pack_id"`
}

type service struct {
	repo    Repository
	clients client.Service
}

// NewService creates a new subscription service.
func NewService(repo Repository, clients client.Service) Service {
	return &service{repo: repo, clients: clients}
}

func (s *service) ListPacks(ctx context.Context, active *bool) ([]*Pack, error) {
	return s.repo.ListPacks(ctx, active)
}

func (s *service) CreatePack(ctx context.Context, req CreatePackRequest) (*Pack, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	p := &Pack{Name: req.Name, Active: active}
	if err := s.repo.CreatePack(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdatePack(ctx context.Context, id int64, patch PackPatch) (*Pack, error) {
	return s.repo.UpdatePack(ctx, id, patch)
}

func (s *service) DeletePack(ctx context.Context, id int64) error {
	return s.repo.DeletePack(ctx, id)
}

func (s *service) Subscribe(ctx context.Context, req SubscribeRequest) (*Subscription, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := s.repo.GetPackByID(ctx, req.PackID); err != nil {
		return nil, err
	}

	c, err := s.clients.GetOrCreate(ctx, &client.Client{Email: req.Email, Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}

	sub := &Subscription{
		ClientID:  c.ID,
		PackID:    req.PackID,
		Status:    StatusActive,
		StartDate: time.Now(),
	}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *service) ListSubscribers(ctx context.Context) ([]*Subscriber, error) {
	return s.repo.ListSubscribers(ctx)
}
