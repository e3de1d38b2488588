// internal/domain/cart/pricing_test.go
package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(id uint, size float64, price string, qty int) Line {
	return Line{
		ProductID: id,
		Size:      size,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestPriceSingleLineExactBreakdown(t *testing.T) {
	totals := Price([]Line{line(1, 10, "159.99", 1)})

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("159.99")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("12.7992")), "tax = %s", totals.Tax)
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("172.7892")), "total = %s", totals.Total)
}

func TestPriceQuantityTwo(t *testing.T) {
	totals := Price([]Line{line(1, 10, "159.99", 2)})

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("319.98")))
}

func TestPriceEmptyCartIsZero(t *testing.T) {
	totals := Price(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestTaxIsAlwaysEightPercentOfSubtotal(t *testing.T) {
	lines := []Line{
		line(1, 10, "159.99", 3),
		line(2, 9, "89.50", 1),
		line(3, 11, "249.99", 2),
	}

	totals := Price(lines)
	want := totals.Subtotal.Mul(decimal.RequireFromString("0.08"))
	assert.True(t, totals.Tax.Equal(want), "tax %s != 8%% of subtotal %s", totals.Tax, totals.Subtotal)
}

func TestSubtotalInvariantUnderLineReordering(t *testing.T) {
	a := []Line{
		line(1, 10, "159.99", 2),
		line(2, 9, "89.50", 1),
		line(3, 11, "249.99", 3),
	}
	b := []Line{a[2], a[0], a[1]}

	assert.True(t, Price(a).Subtotal.Equal(Price(b).Subtotal))
	assert.True(t, Price(a).Total.Equal(Price(b).Total))
}

func TestDisplayRoundsOnlyAtFormatting(t *testing.T) {
	totals := Price([]Line{line(1, 10, "159.99", 1)})

	display := totals.Display()
	assert.Equal(t, "159.99", display.Subtotal)
	assert.Equal(t, "12.80", display.Tax)
	assert.Equal(t, "0.00", display.Shipping)
	assert.Equal(t, "172.79", display.Total)

	// The exact values keep full precision after formatting.
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("12.7992")))
}
