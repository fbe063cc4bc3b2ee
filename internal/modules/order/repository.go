package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable order number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrders returns all orders, optionally filtered by status, newest first.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// ListOrdersByUser returns all orders placed by a signed-in customer.
	ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error)

	// UpdateStatus advances an order to a new status.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SetInvoice attaches the generated invoice text to an order.
	SetInvoice(ctx context.Context, id string, invoice string) error
}
