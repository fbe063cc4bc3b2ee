package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service defines store settings business logic.
type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, req UpdateRequest) (*Settings, error)

	// DeliveryFee is the fee currently charged on non-empty carts: the
	// stored value, or the configured default when settings cannot be read.
	DeliveryFee(ctx context.Context) float64
}

// UpdateRequest holds the editable settings fields.
type UpdateRequest struct {
	StoreName   string  `json:"store_name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	LogoPath    string  `json:"logo_path"`
	DeliveryFee float64 `json:"delivery_fee"`
}

type service struct {
	repo       Repository
	defaultFee float64
}

func NewService(repo Repository, defaultFee float64) Service {
	return &service{repo: repo, defaultFee: defaultFee}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) DeliveryFee(ctx context.Context) float64 {
	st, err := s.repo.Get(ctx)
	if err != nil {
		slog.Warn("falling back to default delivery fee", "err", err)
		return s.defaultFee
	}
	return st.DeliveryFee
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Settings, error) {
	if strings.TrimSpace(req.StoreName) == "" {
		return nil, fmt.Errorf("store_name is required")
	}
	if req.DeliveryFee < 0 {
		return nil, fmt.Errorf("delivery_fee cannot be negative")
	}
	cfg := &Settings{
		StoreName:   req.StoreName,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		LogoPath:    req.LogoPath,
		DeliveryFee: req.DeliveryFee,
	}
	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
