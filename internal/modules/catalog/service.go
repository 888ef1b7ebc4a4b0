package catalog

import (
	"context"
	"fmt"
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context, f Filter) ([]*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, patch Patch) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CreateProductRequest holds the data for creating a product.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	SalePrice   int64    `json:"sale_price"`
	Cost        int64    `json:"cost"`
	Stock       int      `json:"stock"`
	Active      *bool    `json:"active"`
	Visible     *bool    `json:"visible_in_store"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	ProducerID  int64    `json:"producer_id"`
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context, f Filter) ([]*Product, error) {
	return s.repo.List(ctx, f)
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !req.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}
	if req.SalePrice <= 0 {
		return nil, fmt.Errorf("sale_price must be > 0")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock must be >= 0")
	}

	active, visible := true, true
	if req.Active != nil {
		active = *req.Active
	}
	if req.Visible != nil {
		visible = *req.Visible
	}

	p := &Product{
		Name:        req.Name,
		Category:    req.Category,
		SalePrice:   req.SalePrice,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Active:      active,
		Visible:     visible,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		ProducerID:  req.ProducerID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int64, patch Patch) (*Product, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", *patch.Category)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, fmt.Errorf("stock must be >= 0")
	}
	if patch.SalePrice != nil && *patch.SalePrice <= 0 {
		return nil, fmt.Errorf("sale_price must be > 0")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
