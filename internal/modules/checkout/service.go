package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sarmstore/storefront-backend/internal/modules/cart"
	"github.com/sarmstore/storefront-backend/internal/modules/order"
	"github.com/sarmstore/storefront-backend/internal/modules/settings"
	"github.com/sarmstore/storefront-backend/internal/notify"
)

// StockDecrementer issues the per-line stock decrements after an order is
// written. Satisfied by the catalog repository.
type StockDecrementer interface {
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}

// SubmitRequest is the checkout payload.
type SubmitRequest struct {
	Customer      CustomerForm `json:"customer"`
	PaymentMethod string       `json:"payment_method"`
}

// Result is what a successful checkout hands back: the persisted order and
// the two WhatsApp links the client opens.
type Result struct {
	Order        *order.Order `json:"order"`
	OperatorLink string       `json:"operator_link"`
	CustomerLink string       `json:"customer_link"`
}

// Service is the checkout submitter.
type Service interface {
	Submit(ctx context.Context, sessionID string, userID *uuid.UUID, req SubmitRequest) (*Result, error)
}

type service struct {
	carts       cart.Service
	orders      order.Service
	stock       StockDecrementer
	links       *notify.LinkBuilder
	settings    settings.Service
	requireAuth bool
	validate    *validator.Validate
}

func NewService(carts cart.Service, orders order.Service, stock StockDecrementer,
	links *notify.LinkBuilder, settingsSvc settings.Service, requireAuth bool) Service {
	return &service{
		carts:       carts,
		orders:      orders,
		stock:       stock,
		links:       links,
		settings:    settingsSvc,
		requireAuth: requireAuth,
		validate:    newValidator(),
	}
}

// Submit runs the checkout sequence: validate, persist the order, decrement
// stock per line, build notification links, clear the cart.
//
// Only the order write is load-bearing: if it fails nothing changes and the
// cart stays as it was. The stock decrements after it are best-effort and a
// partial failure leaves the order in place — the back-office reconciles
// stock by hand, the customer is never shown a half-failed checkout.
func (s *service) Submit(ctx context.Context, sessionID string, userID *uuid.UUID, req SubmitRequest) (*Result, error) {
	lines, totals, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if verr := validateSubmit(s.validate, req.Customer, lines, userID != nil, s.requireAuth); verr != nil {
		return nil, verr
	}

	items := make([]order.LineInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.LineInput{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			UnitPrice: l.Price,
			Quantity:  l.Quantity,
		})
	}

	o, err := s.orders.Place(ctx, order.PlaceRequest{
		UserID: userID,
		Customer: order.Customer{
			Name:     req.Customer.Name,
			Phone:    req.Customer.Phone,
			Address:  req.Customer.Address,
			Pincode:  req.Customer.Pincode,
			Landmark: req.Customer.Landmark,
		},
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      totals.Subtotal,
		DeliveryFee:   totals.Delivery,
		Total:         totals.Total,
	})
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if err := s.stock.DecrementStock(ctx, l.ProductID, l.Quantity); err != nil {
			slog.Error("stock decrement failed after order write",
				"order_number", o.OrderNumber, "product_id", l.ProductID, "qty", l.Quantity, "err", err)
		}
	}

	st := s.storeInfo(ctx)
	o.Invoice = buildInvoice(o, st, time.Now())
	if err := s.orders.AttachInvoice(ctx, o.ID.String(), o.Invoice); err != nil {
		slog.Error("failed to store invoice", "order_number", o.OrderNumber, "err", err)
	}

	operatorLink, customerLink := s.links.OrderAlerts(o, st.Phone)

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		slog.Error("failed to clear cart after checkout", "session_id", sessionID, "err", err)
	}

	slog.Info("order placed", "order_number", o.OrderNumber, "total", o.Total, "items", len(o.Items))

	return &Result{
		Order:        o,
		OperatorLink: operatorLink,
		CustomerLink: customerLink,
	}, nil
}

func (s *service) storeInfo(ctx context.Context) *settings.Settings {
	st, err := s.settings.Get(ctx)
	if err != nil {
		slog.Warn("falling back to default letterhead", "err", err)
		return &settings.Settings{StoreName: "SARM ENTERPRISES"}
	}
	return st
}
