package faq

import "context"

// Repository defines data access for FAQs.
type Repository interface {
	Create(ctx context.Context, f *FAQ) error
	GetByID(ctx context.Context, id string) (*FAQ, error)
	List(ctx context.Context) ([]FAQ, error)
	Update(ctx context.Context, f *FAQ) error
	Delete(ctx context.Context, id string) error
}
