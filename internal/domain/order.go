package domain

import "fmt"

// PaymentOption selects how an order is paid. Pure selector state; nothing
// happens until submission.
type PaymentOption string

const (
	// PaymentCOD is cash on delivery, the only implemented path.
	PaymentCOD PaymentOption = "COD"
	// PaymentOnline is a deliberate stub; submission reports it unsupported.
	PaymentOnline PaymentOption = "Online"
)

// ParsePaymentOption validates a payment option string.
func ParsePaymentOption(s string) (PaymentOption, error) {
	switch PaymentOption(s) {
	case PaymentCOD:
		return PaymentCOD, nil
	case PaymentOnline:
		return PaymentOnline, nil
	default:
		return "", fmt.Errorf("unknown payment option %q", s)
	}
}

// OrderItem is one (product, quantity) pair of an order submission.
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}
