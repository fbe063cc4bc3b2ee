package quote

import "context"

// Repository defines data access for quotes.
type Repository interface {
	Create(ctx context.Context, q *Quote) error
	List(ctx context.Context) ([]Quote, error)
	Delete(ctx context.Context, id string) error
}
