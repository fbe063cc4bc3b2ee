package quote

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a short customer-facing line shown on the storefront.
type Quote struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
