package settings

import "time"

// Settings is the single-row store configuration: the letterhead printed on
// invoices plus storefront branding.
type Settings struct {
	StoreName   string    `json:"store_name"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	LogoPath    string    `json:"logo_path,omitempty"`
	DeliveryFee float64   `json:"delivery_fee"`
	UpdatedAt   time.Time `json:"updated_at"`
}
