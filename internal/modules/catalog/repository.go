package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, category string) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error

	// DecrementStock subtracts qty from the product's stock. It is issued
	// per line at checkout with no floor at zero: concurrent checkouts can
	// race past zero, matching how the store has always behaved.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}
