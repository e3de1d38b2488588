// internal/domain/cart/pricing.go
package cart

import "github.com/shopspring/decimal"

// Flat 8% sales tax on the subtotal. Shipping is free at any order size.
var (
	taxRate      = decimal.RequireFromString("0.08")
	shippingCost = decimal.Zero
)

// Totals is the pricing breakdown derived from a line collection. Values
// are exact; rounding happens only when formatting for display.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Price derives order totals from the given lines. It is a pure function of
// its input and is recomputed whenever the line collection changes.
func Price(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax).Add(shippingCost)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shippingCost,
		Total:    total,
	}
}

// DisplayTotals carries totals rounded to two decimal places for rendering
type DisplayTotals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// Display rounds the exact totals to two decimal places
func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal: t.Subtotal.StringFixed(2),
		Tax:      t.Tax.StringFixed(2),
		Shipping: t.Shipping.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
}
