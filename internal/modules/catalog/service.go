package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// TopicChanged is published on every successful catalog write so live views
// (the in-memory cache, and through it the storefront) can re-read the set.
const TopicChanged = "catalog.changed"

// Publisher broadcasts catalog change notifications.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, category string) ([]Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// DecrementStock subtracts sold units after checkout. Like every other
	// catalog write it publishes TopicChanged, so the cache the storefront
	// reconciles against picks up the new stock level.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}

// ProductRequest holds the data for creating or updating a product.
type ProductRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Features    string   `json:"features"`
}

type service struct {
	repo Repository
	pub  Publisher
}

func NewService(repo Repository, pub Publisher) Service {
	return &service{repo: repo, pub: pub}
}

func validateRequest(req ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	p := &Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Images:      req.Images,
		Description: req.Description,
		Features:    req.Features,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.publishChanged(p.ID)
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, category string) ([]Product, error) {
	return s.repo.List(ctx, category)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Price = req.Price
	p.Stock = req.Stock
	p.Category = req.Category
	p.Images = req.Images
	p.Description = req.Description
	p.Features = req.Features
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.publishChanged(p.ID)
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if uid, err := uuid.Parse(id); err == nil {
		s.publishChanged(uid)
	}
	return nil
}

func (s *service) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	if err := s.repo.DecrementStock(ctx, id, qty); err != nil {
		return err
	}
	s.publishChanged(id)
	return nil
}

// publishChanged notifies listeners after the write has already been
// committed, so a broken bus never fails the write itself.
func (s *service) publishChanged(id uuid.UUID) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(TopicChanged, []byte(id.String())); err != nil {
		slog.Error("failed to publish catalog change", "product_id", id, "err", err)
	}
}
