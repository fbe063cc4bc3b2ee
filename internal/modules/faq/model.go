package faq

import (
	"time"

	"github.com/google/uuid"
)

// FAQ is a question/answer pair shown on the storefront, ordered by
// DisplayOrder ascending (lower numbers first).
type FAQ struct {
	ID           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	DisplayOrder int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}
