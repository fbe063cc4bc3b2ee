package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item in the storefront catalog. Prices are in rupees,
// stock is the number of units currently on hand.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	Images      []string  `json:"images"`
	Description string    `json:"description,omitempty"`
	Features    string    `json:"features,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PrimaryImage returns the first image of the product, or empty when none
// has been uploaded. Callers substitute the placeholder asset for "".
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
