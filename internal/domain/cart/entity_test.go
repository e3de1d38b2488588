// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
)

func sneaker(id uint, name, price string) *catalog.Sneaker {
	return &catalog.Sneaker{
		ID:    id,
		Name:  name,
		Brand: "Nike",
		Price: decimal.RequireFromString(price),
		Sizes: []catalog.SneakerSize{{Size: 9}, {Size: 10}, {Size: 10.5}},
	}
}

func TestAddItemRepeatedSameKeyMergesIntoOneLine(t *testing.T) {
	c := New()
	snk := sneaker(1, "Air Max Pulse", "159.99")

	for i := 0; i < 4; i++ {
		c.AddItem(snk, 10)
	}

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 4, c.Lines[0].Quantity)
	assert.True(t, c.Lines[0].UnitPrice.Equal(decimal.RequireFromString("159.99")))
}

func TestAddItemDifferentSizeIsDistinctLine(t *testing.T) {
	c := New()
	snk := sneaker(1, "Air Max Pulse", "159.99")

	c.AddItem(snk, 10)
	c.AddItem(snk, 10.5)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, 1, c.Lines[1].Quantity)
}

func TestAddItemSnapshotsPriceAtFirstAdd(t *testing.T) {
	c := New()
	snk := sneaker(1, "Air Max Pulse", "159.99")
	c.AddItem(snk, 10)

	// Catalog price changes after the line exists; the snapshot stays.
	snk.Price = decimal.RequireFromString("139.99")
	c.AddItem(snk, 10)

	require.Len(t, c.Lines, 1)
	assert.True(t, c.Lines[0].UnitPrice.Equal(decimal.RequireFromString("159.99")))
}

func TestSetQuantityBelowOneIsIgnored(t *testing.T) {
	c := New()
	c.AddItem(sneaker(1, "Air Max Pulse", "159.99"), 10)
	key := LineKey{ProductID: 1, Size: 10}

	assert.False(t, c.SetQuantity(key, 0))
	assert.False(t, c.SetQuantity(key, -3))

	line, ok := c.Find(key)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
}

func TestSetQuantityReplacesStoredQuantity(t *testing.T) {
	c := New()
	c.AddItem(sneaker(1, "Air Max Pulse", "159.99"), 10)
	key := LineKey{ProductID: 1, Size: 10}

	assert.True(t, c.SetQuantity(key, 7))

	line, _ := c.Find(key)
	assert.Equal(t, 7, line.Quantity)
}

func TestRemoveItemAbsentKeyIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(sneaker(1, "Air Max Pulse", "159.99"), 10)
	before := make([]Line, len(c.Lines))
	copy(before, c.Lines)

	assert.False(t, c.RemoveItem(LineKey{ProductID: 42, Size: 8}))
	assert.Equal(t, before, c.Lines)
}

func TestRemoveItemDeletesLine(t *testing.T) {
	c := New()
	c.AddItem(sneaker(1, "Air Max Pulse", "159.99"), 10)
	c.AddItem(sneaker(2, "Ultra Boost", "179.99"), 9)

	assert.True(t, c.RemoveItem(LineKey{ProductID: 1, Size: 10}))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, uint(2), c.Lines[0].ProductID)
}

func TestClearEmptiesCollection(t *testing.T) {
	c := New()
	c.AddItem(sneaker(1, "Air Max Pulse", "159.99"), 10)
	c.AddItem(sneaker(2, "Ultra Boost", "179.99"), 9)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalQuantity())
}

func TestTotalQuantitySumsAllLines(t *testing.T) {
	c := New()
	snk := sneaker(1, "Air Max Pulse", "159.99")
	c.AddItem(snk, 10)
	c.AddItem(snk, 10)
	c.AddItem(snk, 9)

	assert.Equal(t, 3, c.TotalQuantity())
	assert.Len(t, c.Lines, 2)
}
