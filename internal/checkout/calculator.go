// Package checkout derives order totals and drives order submission.
package checkout

import (
	"github.com/23prakashjha/Grocery-App/internal/domain"
)

// DefaultTaxRatePercent is the tax rate applied when none is configured.
const DefaultTaxRatePercent = 2.0

// Totals is the checkout price breakdown. Values carry full float precision;
// rounding to two decimals happens only at the display edge.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Calculator computes checkout totals from cart lines.
type Calculator struct {
	// RatePercent is the tax rate as a percentage, e.g. 2 for 2%.
	RatePercent float64
}

// NewCalculator creates a calculator with the given tax rate percentage.
func NewCalculator(ratePercent float64) *Calculator {
	return &Calculator{RatePercent: ratePercent}
}

// Totals computes subtotal, tax and total for the given lines. The raw sum
// is kept at full precision; the two-decimal truncation applies only to the
// cart amount, never here.
func (c *Calculator) Totals(lines []domain.CartLine) Totals {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.Subtotal()
	}

	tax := subtotal * c.RatePercent / 100
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
