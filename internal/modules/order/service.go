package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines the order management business logic.
type Service interface {
	// Place persists a new pending order built from a checked-out cart.
	Place(ctx context.Context, req PlaceRequest) (*Order, error)

	// GetOrder retrieves a full order with its items by UUID.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrders returns all orders, optionally filtered by status.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// ListUserOrders returns all orders placed by a customer.
	ListUserOrders(ctx context.Context, userID string) ([]*Order, error)

	// UpdateStatus advances an order to a new lifecycle status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)

	// CancelOrder cancels a pending or confirmed order.
	CancelOrder(ctx context.Context, id string) error

	// AttachInvoice stores the generated invoice text on an order.
	AttachInvoice(ctx context.Context, id string, invoice string) error
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validTransitions defines the allowed status state machine.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

func (s *service) Place(ctx context.Context, req PlaceRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	method := PaymentMethod(strings.ToLower(req.PaymentMethod))
	switch method {
	case PaymentCashOnDelivery, PaymentUPI:
	case "":
		method = PaymentCashOnDelivery
	default:
		return nil, fmt.Errorf("unsupported payment method %q", req.PaymentMethod)
	}

	var items []*Item
	for _, li := range req.Items {
		if li.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", li.ProductID)
		}
		items = append(items, &Item{
			ID:        uuid.New(),
			ProductID: li.ProductID,
			Name:      li.Name,
			Image:     li.Image,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			LineTotal: li.UnitPrice * float64(li.Quantity),
		})
	}

	o := &Order{
		ID:            uuid.New(),
		OrderNumber:   generateOrderNumber(),
		UserID:        req.UserID,
		Customer:      req.Customer,
		Items:         items,
		Subtotal:      req.Subtotal,
		DeliveryFee:   req.DeliveryFee,
		Total:         req.Total,
		PaymentMethod: method,
		Status:        StatusPending,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetOrderByNumber(ctx, orderNumber)
}

func (s *service) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	return s.repo.ListOrders(ctx, status)
}

func (s *service) ListUserOrders(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	newStatus := Status(strings.ToLower(req.Status))
	valid := false
	for _, allowed := range validTransitions[o.Status] {
		if allowed == newStatus {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	o.Status = newStatus
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, id string) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}
	if o.Status != StatusPending && o.Status != StatusConfirmed {
		return fmt.Errorf("only pending or confirmed orders can be cancelled (current: %s)", o.Status)
	}
	return s.repo.UpdateStatus(ctx, id, StatusCancelled)
}

func (s *service) AttachInvoice(ctx context.Context, id string, invoice string) error {
	return s.repo.SetInvoice(ctx, id, invoice)
}

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}
