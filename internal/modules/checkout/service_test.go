package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarmstore/storefront-backend/internal/modules/cart"
	"github.com/sarmstore/storefront-backend/internal/modules/order"
	"github.com/sarmstore/storefront-backend/internal/modules/settings"
	"github.com/sarmstore/storefront-backend/internal/notify"
)

type fakeCarts struct {
	lines   []cart.Line
	cleared bool
}

func (f *fakeCarts) Get(_ context.Context, _ string) ([]cart.Line, cart.Totals, error) {
	return f.lines, cart.ComputeTotals(f.lines, 50), nil
}

func (f *fakeCarts) Add(context.Context, string, string) ([]cart.Line, error) {
	panic("not used")
}

func (f *fakeCarts) ChangeQuantity(context.Context, string, string, int) ([]cart.Line, error) {
	panic("not used")
}

func (f *fakeCarts) Remove(context.Context, string, string) ([]cart.Line, error) {
	panic("not used")
}

func (f *fakeCarts) Clear(_ context.Context, _ string) error {
	f.cleared = true
	f.lines = nil
	return nil
}

func (f *fakeCarts) TotalsFor(_ context.Context, lines []cart.Line) cart.Totals {
	return cart.ComputeTotals(lines, 50)
}

func (f *fakeCarts) Store() cart.Store { return nil }

type fakeOrders struct {
	placeErr error
	placed   *order.Order
	invoice  string
}

func (f *fakeOrders) Place(_ context.Context, req order.PlaceRequest) (*order.Order, error) {
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	items := make([]*order.Item, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, &order.Item{
			ProductID: in.ProductID,
			Name:      in.Name,
			UnitPrice: in.UnitPrice,
			Quantity:  in.Quantity,
			LineTotal: in.UnitPrice * float64(in.Quantity),
		})
	}
	f.placed = &order.Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-20260829-0001",
		Customer:      req.Customer,
		Items:         items,
		Subtotal:      req.Subtotal,
		DeliveryFee:   req.DeliveryFee,
		Total:         req.Total,
		PaymentMethod: order.PaymentCashOnDelivery,
		Status:        order.StatusPending,
	}
	return f.placed, nil
}

func (f *fakeOrders) GetOrder(context.Context, string) (*order.Order, error) { panic("not used") }
func (f *fakeOrders) GetOrderByNumber(context.Context, string) (*order.Order, error) {
	panic("not used")
}
func (f *fakeOrders) ListOrders(context.Context, string) ([]*order.Order, error) {
	panic("not used")
}
func (f *fakeOrders) ListUserOrders(context.Context, string) ([]*order.Order, error) {
	panic("not used")
}
func (f *fakeOrders) UpdateStatus(context.Context, string, order.UpdateStatusRequest) (*order.Order, error) {
	panic("not used")
}
func (f *fakeOrders) CancelOrder(context.Context, string) error { panic("not used") }
func (f *fakeOrders) AttachInvoice(_ context.Context, _ string, invoice string) error {
	f.invoice = invoice
	return nil
}

type fakeStock struct {
	calls   map[uuid.UUID]int
	failFor uuid.UUID
}

func (f *fakeStock) DecrementStock(_ context.Context, id uuid.UUID, qty int) error {
	if f.calls == nil {
		f.calls = map[uuid.UUID]int{}
	}
	if id == f.failFor {
		return errors.New("product not found")
	}
	f.calls[id] += qty
	return nil
}

type fakeSettings struct{}

func (fakeSettings) Get(context.Context) (*settings.Settings, error) {
	return &settings.Settings{StoreName: "SARM ENTERPRISES", Phone: "917006927825"}, nil
}

func (fakeSettings) Update(context.Context, settings.UpdateRequest) (*settings.Settings, error) {
	panic("not used")
}

func (fakeSettings) DeliveryFee(context.Context) float64 { return 50 }

func checkoutFixture(lines []cart.Line) (Service, *fakeCarts, *fakeOrders, *fakeStock) {
	carts := &fakeCarts{lines: lines}
	orders := &fakeOrders{}
	stock := &fakeStock{}
	links := notify.NewLinkBuilder("wa.me", "917006927825")
	svc := NewService(carts, orders, stock, links, fakeSettings{}, true)
	return svc, carts, orders, stock
}

func submitReq() SubmitRequest {
	return SubmitRequest{
		Customer: CustomerForm{
			Name:    "Asha Kumari",
			Phone:   "9876543210",
			Address: "12 Residency Road, Srinagar",
			Pincode: "190001",
		},
		PaymentMethod: "cash_on_delivery",
	}
}

func TestSubmitPlacesOrderAndClearsCart(t *testing.T) {
	pid := uuid.New()
	lines := []cart.Line{{ProductID: pid, Name: "Classic Notebook", Price: 120, Quantity: 2}}
	svc, carts, orders, stock := checkoutFixture(lines)
	userID := uuid.New()

	res, err := svc.Submit(context.Background(), "sess-1", &userID, submitReq())
	require.NoError(t, err)
	require.NotNil(t, res.Order)

	assert.Equal(t, 240.0, res.Order.Subtotal)
	assert.Equal(t, 50.0, res.Order.DeliveryFee)
	assert.Equal(t, 290.0, res.Order.Total)
	assert.True(t, carts.cleared)
	assert.Equal(t, 2, stock.calls[pid])

	assert.Contains(t, res.OperatorLink, "https://wa.me/917006927825?text=")
	assert.Contains(t, res.CustomerLink, "https://wa.me/9876543210?text=")
	assert.Contains(t, orders.invoice, "SARM ENTERPRISES")
	assert.Contains(t, orders.invoice, "INVOICE #"+res.Order.OrderNumber)
}

func TestSubmitValidationLeavesCartUntouched(t *testing.T) {
	pid := uuid.New()
	lines := []cart.Line{{ProductID: pid, Name: "Classic Notebook", Price: 120, Quantity: 1}}
	svc, carts, _, stock := checkoutFixture(lines)

	req := submitReq()
	req.Customer.Phone = "12345"
	userID := uuid.New()

	_, err := svc.Submit(context.Background(), "sess-1", &userID, req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindInvalidPhone, verr.Kind)
	assert.False(t, carts.cleared)
	assert.Empty(t, stock.calls)
}

func TestSubmitRejectsAnonymousWhenAuthRequired(t *testing.T) {
	lines := []cart.Line{{ProductID: uuid.New(), Price: 120, Quantity: 1}}
	svc, _, _, _ := checkoutFixture(lines)

	_, err := svc.Submit(context.Background(), "sess-1", nil, submitReq())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindNotAuthenticated, verr.Kind)
}

func TestSubmitOrderWriteFailureKeepsCart(t *testing.T) {
	pid := uuid.New()
	lines := []cart.Line{{ProductID: pid, Price: 120, Quantity: 1}}
	carts := &fakeCarts{lines: lines}
	orders := &fakeOrders{placeErr: errors.New("db down")}
	stock := &fakeStock{}
	links := notify.NewLinkBuilder("wa.me", "917006927825")
	svc := NewService(carts, orders, stock, links, fakeSettings{}, false)

	_, err := svc.Submit(context.Background(), "sess-1", nil, submitReq())
	require.Error(t, err)
	assert.False(t, carts.cleared)
	assert.Empty(t, stock.calls)
}

func TestSubmitPartialStockFailureKeepsOrder(t *testing.T) {
	good := uuid.New()
	gone := uuid.New()
	lines := []cart.Line{
		{ProductID: good, Name: "Notebook", Price: 120, Quantity: 1},
		{ProductID: gone, Name: "Pen", Price: 20, Quantity: 3},
	}
	carts := &fakeCarts{lines: lines}
	orders := &fakeOrders{}
	stock := &fakeStock{failFor: gone}
	links := notify.NewLinkBuilder("wa.me", "917006927825")
	svc := NewService(carts, orders, stock, links, fakeSettings{}, false)

	res, err := svc.Submit(context.Background(), "sess-1", nil, submitReq())
	require.NoError(t, err)
	require.NotNil(t, res.Order)
	assert.Equal(t, 1, stock.calls[good])
	assert.True(t, carts.cleared)
}
