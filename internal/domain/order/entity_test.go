// internal/domain/order/entity_test.go
package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	item := OrderItem{
		UnitPrice: decimal.RequireFromString("159.99"),
		Quantity:  3,
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("479.97")))
}

func TestTotalQuantity(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{Quantity: 2},
			{Quantity: 1},
			{Quantity: 4},
		},
	}

	assert.Equal(t, 7, o.TotalQuantity())
}

func TestTotalQuantityEmptyOrder(t *testing.T) {
	var o Order
	assert.Equal(t, 0, o.TotalQuantity())
}
