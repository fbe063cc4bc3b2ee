package cart

import "github.com/google/uuid"

// Line is one entry in a shopper's cart. Name, price and image are copied
// from the catalog at add time, so a later price edit does not retroactively
// change what the shopper saw.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
}

// Totals is the priced summary of a cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// ComputeTotals sums the cart lines and applies the flat delivery fee.
// An empty cart carries no delivery charge.
func ComputeTotals(lines []Line, deliveryFee float64) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}
	delivery := 0.0
	if len(lines) > 0 {
		delivery = deliveryFee
	}
	return Totals{
		Subtotal: subtotal,
		Delivery: delivery,
		Total:    subtotal + delivery,
	}
}

// ItemCount is the total number of units across all lines.
func ItemCount(lines []Line) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
