package producer

import (
	"context"
	"fmt"
)

// Service defines producer business logic.
type Service interface {
	ListProducers(ctx context.Context, active *bool) ([]*Producer, error)
	GetProducer(ctx context.Context, id int64) (*Producer, error)
	CreateProducer(ctx context.Context, req CreateProducerRequest) (*Producer, error)
	UpdateProducer(ctx context.Context, id int64, patch Patch) (*Producer, error)
	DeleteProducer(ctx context.Context, id int64) error
}

// CreateProducerRequest holds the data for creating a producer.
type CreateProducerRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Specialty string `json:"specialty"`
	History   string `json:"history"`
	Active    *bool  `json:"active"`
}

type service struct{ repo Repository }

// NewService creates a new producer service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducers(ctx context.Context, active *bool) ([]*Producer, error) {
	return s.repo.List(ctx, active)
}

func (s *service) GetProducer(ctx context.Context, id int64) (*Producer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateProducer(ctx context.Context, req CreateProducerRequest) (*Producer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	p := &Producer{
		Name:      req.Name,
		Location:  req.Location,
		Specialty: req.Specialty,
		History:   req.History,
		Active:    active,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProducer(ctx context.Context, id int64, patch Patch) (*Producer, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *service) DeleteProducer(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
