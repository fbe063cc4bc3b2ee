package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	orders map[string]*Order
}

func newMemRepo() *memRepo {
	return &memRepo{orders: map[string]*Order{}}
}

func (m *memRepo) CreateOrder(_ context.Context, o *Order) error {
	m.orders[o.ID.String()] = o
	return nil
}

func (m *memRepo) GetOrderByID(_ context.Context, id string) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	return o, nil
}

func (m *memRepo) GetOrderByNumber(_ context.Context, number string) (*Order, error) {
	for _, o := range m.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, errors.New("order not found")
}

func (m *memRepo) ListOrders(_ context.Context, status string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if status == "" || string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memRepo) ListOrdersByUser(_ context.Context, userID string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if o.UserID != nil && o.UserID.String() == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	o, ok := m.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.Status = status
	return nil
}

func (m *memRepo) SetInvoice(_ context.Context, id string, invoice string) error {
	o, ok := m.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.Invoice = invoice
	return nil
}

func placeFixture(t *testing.T, svc Service) *Order {
	t.Helper()
	o, err := svc.Place(context.Background(), PlaceRequest{
		Customer: Customer{
			Name:    "Asha Kumari",
			Phone:   "9876543210",
			Address: "12 Residency Road",
			Pincode: "190001",
		},
		Items: []LineInput{
			{ProductID: uuid.New(), Name: "Classic Notebook", UnitPrice: 120, Quantity: 2},
		},
		PaymentMethod: "cash_on_delivery",
		Subtotal:      240,
		DeliveryFee:   50,
		Total:         290,
	})
	require.NoError(t, err)
	return o
}

func TestPlaceCreatesPendingOrder(t *testing.T) {
	svc := NewService(newMemRepo())
	o := placeFixture(t, svc)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, PaymentCashOnDelivery, o.PaymentMethod)
	assert.True(t, strings.HasPrefix(o.OrderNumber, "ORD-"), "got %q", o.OrderNumber)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 240.0, o.Items[0].LineTotal)
}

func TestPlaceDefaultsPaymentMethod(t *testing.T) {
	svc := NewService(newMemRepo())
	o, err := svc.Place(context.Background(), PlaceRequest{
		Customer: Customer{Name: "A", Phone: "9876543210", Address: "x", Pincode: "190001"},
		Items:    []LineInput{{ProductID: uuid.New(), Name: "Pen", UnitPrice: 20, Quantity: 1}},
		Subtotal: 20, DeliveryFee: 50, Total: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, PaymentCashOnDelivery, o.PaymentMethod)
}

func TestPlaceRejectsEmptyAndBadInput(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Place(context.Background(), PlaceRequest{})
	assert.Error(t, err)

	_, err = svc.Place(context.Background(), PlaceRequest{
		Items:         []LineInput{{ProductID: uuid.New(), Quantity: 1}},
		PaymentMethod: "bitcoin",
	})
	assert.Error(t, err)

	_, err = svc.Place(context.Background(), PlaceRequest{
		Items: []LineInput{{ProductID: uuid.New(), Quantity: 0}},
	})
	assert.Error(t, err)
}

func TestUpdateStatusFollowsTransitions(t *testing.T) {
	svc := NewService(newMemRepo())
	o := placeFixture(t, svc)
	ctx := context.Background()

	got, err := svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)

	got, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "shipped"})
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, got.Status)

	got, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)
}

func TestUpdateStatusRejectsIllegalJump(t *testing.T) {
	svc := NewService(newMemRepo())
	o := placeFixture(t, svc)

	_, err := svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "delivered"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
}

func TestCancelOrderRules(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	o := placeFixture(t, svc)
	require.NoError(t, svc.CancelOrder(ctx, o.ID.String()))

	got, err := svc.GetOrder(ctx, o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)

	shipped := placeFixture(t, svc)
	_, err = svc.UpdateStatus(ctx, shipped.ID.String(), UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, shipped.ID.String(), UpdateStatusRequest{Status: "shipped"})
	require.NoError(t, err)

	err = svc.CancelOrder(ctx, shipped.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only pending or confirmed")
}

func TestAttachInvoice(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	o := placeFixture(t, svc)

	require.NoError(t, svc.AttachInvoice(context.Background(), o.ID.String(), "INVOICE TEXT"))
	assert.Equal(t, "INVOICE TEXT", repo.orders[o.ID.String()].Invoice)
}
