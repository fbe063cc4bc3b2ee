package order

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an order. Orders are created
// once at checkout and only ever advanced by the back-office; they are
// never deleted.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentUPI            PaymentMethod = "upi"
)

// Customer is the delivery contact captured at checkout.
type Customer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

// Order is a customer's placed order with a snapshot of the cart at submit
// time. Totals are frozen here; later catalog price edits do not touch them.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	OrderNumber   string        `json:"order_number"`
	UserID        *uuid.UUID    `json:"user_id,omitempty"` // nil for guest checkout
	Customer      Customer      `json:"customer"`
	Items         []*Item       `json:"items,omitempty"`
	Subtotal      float64       `json:"subtotal"`
	DeliveryFee   float64       `json:"delivery_fee"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        Status        `json:"status"`
	Invoice       string        `json:"invoice,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Item is a single line item within an order, copied from the cart line
// that produced it.
type Item struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"line_total"`
	CreatedAt time.Time `json:"created_at"`
}

// LineInput describes one cart line handed to Place.
type LineInput struct {
	ProductID uuid.UUID
	Name      string
	Image     string
	UnitPrice float64
	Quantity  int
}

// PlaceRequest is the payload for creating a new order from a checked-out cart.
type PlaceRequest struct {
	UserID        *uuid.UUID
	Customer      Customer
	Items         []LineInput
	PaymentMethod string
	Subtotal      float64
	DeliveryFee   float64
	Total         float64
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
