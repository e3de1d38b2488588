// internal/domain/wishlist/entity_test.go
package wishlist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
)

func sneaker(price string, stock int) *catalog.Sneaker {
	return &catalog.Sneaker{
		ID:          1,
		Name:        "Air Max Pulse",
		Brand:       "Nike",
		Price:       decimal.RequireFromString(price),
		StockStatus: catalog.StockStatusInStock,
		StockCount:  stock,
	}
}

func item(priceAtSave string) *Item {
	return &Item{
		UserID:      7,
		SneakerID:   1,
		PriceAtSave: decimal.RequireFromString(priceAtSave),
	}
}

func TestNoticesPriceDrop(t *testing.T) {
	notices := Notices(item("159.99"), sneaker("129.99", 50))

	require.Len(t, notices, 1)
	assert.Equal(t, NoticePriceDrop, notices[0].Kind)
	assert.True(t, notices[0].OldPrice.Equal(decimal.RequireFromString("159.99")))
	assert.True(t, notices[0].NewPrice.Equal(decimal.RequireFromString("129.99")))
	assert.Equal(t, "Air Max Pulse dropped in price!", notices[0].Message)
}

func TestNoticesNoDropWhenPriceRises(t *testing.T) {
	notices := Notices(item("159.99"), sneaker("189.99", 50))
	assert.Empty(t, notices)
}

func TestNoticesNoDropWhenPriceUnchanged(t *testing.T) {
	notices := Notices(item("159.99"), sneaker("159.99", 50))
	assert.Empty(t, notices)
}

func TestNoticesLowStock(t *testing.T) {
	notices := Notices(item("159.99"), sneaker("159.99", 3))

	require.Len(t, notices, 1)
	assert.Equal(t, NoticeLowStock, notices[0].Kind)
	assert.Equal(t, "Air Max Pulse is almost sold out!", notices[0].Message)
}

func TestNoticesOutOfStockIsNotLowStock(t *testing.T) {
	s := sneaker("159.99", 0)
	s.StockStatus = catalog.StockStatusOutOfStock

	notices := Notices(item("159.99"), s)
	assert.Empty(t, notices)
}

func TestNoticesBothKinds(t *testing.T) {
	notices := Notices(item("179.99"), sneaker("149.99", 2))

	require.Len(t, notices, 2)
	assert.Equal(t, NoticePriceDrop, notices[0].Kind)
	assert.Equal(t, NoticeLowStock, notices[1].Kind)
}
