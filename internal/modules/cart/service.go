package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sarmstore/storefront-backend/internal/modules/catalog"
)

// ProductSource supplies catalog products for reconciliation. Satisfied by
// *catalog.Cache.
type ProductSource interface {
	Get(id uuid.UUID) (catalog.Product, bool)
}

// FeeSource supplies the current delivery fee, so an admin edit to the
// stored fee takes effect on the next priced cart without a restart.
// Satisfied by settings.Service.
type FeeSource interface {
	DeliveryFee(ctx context.Context) float64
}

// Service ties cart mutations to the catalog snapshot and the persisted store.
type Service interface {
	Get(ctx context.Context, sessionID string) ([]Line, Totals, error)
	Add(ctx context.Context, sessionID string, productID string) ([]Line, error)
	ChangeQuantity(ctx context.Context, sessionID string, productID string, delta int) ([]Line, error)
	Remove(ctx context.Context, sessionID string, productID string) ([]Line, error)
	Clear(ctx context.Context, sessionID string) error

	// TotalsFor prices an already-loaded cart.
	TotalsFor(ctx context.Context, lines []Line) Totals

	// Store exposes the underlying persistence so checkout can load and
	// clear the same cart the storefront mutates.
	Store() Store
}

type service struct {
	store            Store
	products         ProductSource
	fees             FeeSource
	placeholderImage string
}

func NewService(store Store, products ProductSource, fees FeeSource, placeholderImage string) Service {
	return &service{
		store:            store,
		products:         products,
		fees:             fees,
		placeholderImage: placeholderImage,
	}
}

func (s *service) Store() Store { return s.store }

func (s *service) TotalsFor(ctx context.Context, lines []Line) Totals {
	return ComputeTotals(lines, s.fees.DeliveryFee(ctx))
}

func (s *service) Get(ctx context.Context, sessionID string) ([]Line, Totals, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, Totals{}, err
	}
	return lines, s.TotalsFor(ctx, lines), nil
}

func (s *service) Add(ctx context.Context, sessionID string, productID string) ([]Line, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	p, ok := s.products.Get(pid)
	if !ok {
		return nil, ErrUnavailable
	}

	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	image := p.PrimaryImage()
	if image == "" {
		image = s.placeholderImage
	}

	lines, err = Add(lines, p, image)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *service) ChangeQuantity(ctx context.Context, sessionID string, productID string, delta int) ([]Line, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	p, ok := s.products.Get(pid)
	if !ok {
		return nil, ErrUnavailable
	}

	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines, err = ChangeQuantity(lines, p, delta)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *service) Remove(ctx context.Context, sessionID string, productID string) ([]Line, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines = Remove(lines, pid)
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}
