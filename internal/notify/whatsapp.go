// Package notify builds outbound WhatsApp deep links for order alerts.
// Nothing is sent server-side: the links are handed back to the client to
// open, and no response is ever awaited.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sarmstore/storefront-backend/internal/modules/order"
)

// LinkBuilder constructs wa.me-style deep links.
type LinkBuilder struct {
	host       string
	adminPhone string
}

func NewLinkBuilder(host, adminPhone string) *LinkBuilder {
	if host == "" {
		host = "wa.me"
	}
	return &LinkBuilder{host: host, adminPhone: adminPhone}
}

// OrderAlerts returns the operator and customer notification links for a
// freshly placed order. operatorPhone overrides the configured admin phone
// when the store settings carry one; empty falls back to the default.
func (b *LinkBuilder) OrderAlerts(o *order.Order, operatorPhone string) (operator, customer string) {
	if operatorPhone == "" {
		operatorPhone = b.adminPhone
	}
	return b.Link(operatorPhone, operatorMessage(o)), b.Link(o.Customer.Phone, customerMessage(o))
}

// Link builds https://<host>/<phone>?text=<url-encoded message>.
func (b *LinkBuilder) Link(phone, text string) string {
	return fmt.Sprintf("https://%s/%s?text=%s", b.host, phone, url.QueryEscape(text))
}

func operatorMessage(o *order.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New Order #%s\n", o.OrderNumber)
	fmt.Fprintf(&sb, "Customer: %s\n", o.Customer.Name)
	writeItems(&sb, o)
	fmt.Fprintf(&sb, "Total: ₹%.0f\n", o.Total)
	fmt.Fprintf(&sb, "Payment: %s", o.PaymentMethod)
	return sb.String()
}

func customerMessage(o *order.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Thank you for your order #%s\n", o.OrderNumber)
	fmt.Fprintf(&sb, "We'll deliver to: %s\n", o.Customer.Address)
	writeItems(&sb, o)
	fmt.Fprintf(&sb, "Total: ₹%.0f\n", o.Total)
	fmt.Fprintf(&sb, "Payment: %s", o.PaymentMethod)
	return sb.String()
}

func writeItems(sb *strings.Builder, o *order.Order) {
	for _, item := range o.Items {
		fmt.Fprintf(sb, "%s × %d = ₹%.0f\n", item.Name, item.Quantity, item.LineTotal)
	}
}
