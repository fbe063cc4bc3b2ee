package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a storefront product grouping. The slug is what products
// reference and what the catalog list filter accepts.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
