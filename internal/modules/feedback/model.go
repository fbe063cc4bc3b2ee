package feedback

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// Feedback holds a customer review. New submissions start pending and
// only show publicly once approved.
type Feedback struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Message      string    `json:"message"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubmitRequest struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Message      string `json:"message"`
}
