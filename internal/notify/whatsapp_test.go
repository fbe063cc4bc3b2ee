package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarmstore/storefront-backend/internal/modules/order"
)

func sampleOrder() *order.Order {
	return &order.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260829-AB12",
		Customer: order.Customer{
			Name:    "Asha Kumari",
			Phone:   "9876543210",
			Address: "12 Residency Road, Srinagar",
			Pincode: "190001",
		},
		Items: []*order.Item{
			{Name: "Classic Notebook", Quantity: 2, UnitPrice: 120, LineTotal: 240},
		},
		Subtotal:      240,
		DeliveryFee:   50,
		Total:         290,
		PaymentMethod: order.PaymentCashOnDelivery,
	}
}

func TestLinkEncodesText(t *testing.T) {
	b := NewLinkBuilder("wa.me", "917006927825")

	link := b.Link("9876543210", "hello there & welcome")
	assert.Equal(t, "https://wa.me/9876543210?text=hello+there+%26+welcome", link)
}

func TestOrderAlertsTargets(t *testing.T) {
	b := NewLinkBuilder("wa.me", "917006927825")
	operator, customer := b.OrderAlerts(sampleOrder(), "")

	assert.True(t, strings.HasPrefix(operator, "https://wa.me/917006927825?text="))
	assert.True(t, strings.HasPrefix(customer, "https://wa.me/9876543210?text="))
}

func TestOrderAlertsOperatorOverride(t *testing.T) {
	b := NewLinkBuilder("wa.me", "917006927825")
	operator, _ := b.OrderAlerts(sampleOrder(), "919999888877")

	assert.True(t, strings.HasPrefix(operator, "https://wa.me/919999888877?text="))
}

func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestOperatorMessageContents(t *testing.T) {
	b := NewLinkBuilder("wa.me", "917006927825")
	operator, _ := b.OrderAlerts(sampleOrder(), "")

	text := decodeText(t, operator)
	assert.Contains(t, text, "New Order #ORD-20260829-AB12")
	assert.Contains(t, text, "Customer: Asha Kumari")
	assert.Contains(t, text, "Classic Notebook × 2 = ₹240")
	assert.Contains(t, text, "Total: ₹290")
	assert.Contains(t, text, "Payment: cash_on_delivery")
}

func TestCustomerMessageContents(t *testing.T) {
	b := NewLinkBuilder("wa.me", "917006927825")
	_, customer := b.OrderAlerts(sampleOrder(), "")

	text := decodeText(t, customer)
	assert.Contains(t, text, "Thank you for your order #ORD-20260829-AB12")
	assert.Contains(t, text, "We'll deliver to: 12 Residency Road, Srinagar")
	assert.Contains(t, text, "Total: ₹290")
}

func TestEmptyHostDefaults(t *testing.T) {
	b := NewLinkBuilder("", "917006927825")
	assert.True(t, strings.HasPrefix(b.Link("9876543210", "hi"), "https://wa.me/"))
}
