package category

import "context"

// Repository defines data access for categories.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id string) error
}
