package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/sarmstore/storefront-backend/internal/modules/order"
	"github.com/sarmstore/storefront-backend/internal/modules/settings"
)

// buildInvoice renders the plain-text invoice stored on the order record.
func buildInvoice(o *order.Order, st *settings.Settings, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", st.StoreName)
	if st.Address != "" {
		fmt.Fprintf(&sb, "%s\n", st.Address)
	}
	if st.Phone != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", st.Phone)
	}
	if st.Email != "" {
		fmt.Fprintf(&sb, "Email: %s\n", st.Email)
	}

	fmt.Fprintf(&sb, "\nINVOICE #%s\n", o.OrderNumber)
	fmt.Fprintf(&sb, "Date: %s\n", now.Format("02/01/2006"))

	sb.WriteString("\nCustomer Details:\n")
	fmt.Fprintf(&sb, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&sb, "Phone: %s\n", o.Customer.Phone)
	fmt.Fprintf(&sb, "Address: %s\n", o.Customer.Address)
	fmt.Fprintf(&sb, "Pincode: %s\n", o.Customer.Pincode)
	if o.Customer.Landmark != "" {
		fmt.Fprintf(&sb, "Landmark: %s\n", o.Customer.Landmark)
	}

	sb.WriteString("\nItems:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&sb, "%s × %d = ₹%.0f\n", item.Name, item.Quantity, item.LineTotal)
	}

	fmt.Fprintf(&sb, "\nSubtotal: ₹%.0f\n", o.Subtotal)
	fmt.Fprintf(&sb, "Delivery: ₹%.0f\n", o.DeliveryFee)
	fmt.Fprintf(&sb, "Total: ₹%.0f\n", o.Total)
	fmt.Fprintf(&sb, "\nPayment Method: %s\n", o.PaymentMethod)
	sb.WriteString("\nThank you for your business!\n")

	return sb.String()
}
