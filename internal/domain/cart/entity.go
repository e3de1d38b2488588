// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
)

// LineKey identifies a cart line. Two additions of the same sneaker and size
// combine into one line; a different size of the same sneaker is a distinct
// line.
type LineKey struct {
	ProductID uint    `json:"product_id"`
	Size      float64 `json:"size"`
}

// Line represents a single cart entry. UnitPrice is a snapshot taken when
// the line was created and is not re-fetched on later additions.
type Line struct {
	ProductID uint            `json:"product_id"`
	Size      float64         `json:"size"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// Key returns the line's identity key
func (l Line) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size}
}

// Cart holds the line collection for one visitor session. All mutation goes
// through the methods below; a stored line always has quantity >= 1.
type Cart struct {
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns an empty cart
func New() *Cart {
	now := time.Now().UTC()
	return &Cart{
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem adds one unit of the sneaker in the given size. An existing line
// with the same key has its quantity incremented; otherwise a new line is
// appended with quantity 1, snapshotting the sneaker's current price. The
// operation always succeeds and returns the resulting line.
func (c *Cart) AddItem(snk *catalog.Sneaker, size float64) Line {
	key := LineKey{ProductID: snk.ID, Size: size}

	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity++
			c.touch()
			return c.Lines[i]
		}
	}

	line := Line{
		ProductID: snk.ID,
		Size:      size,
		Name:      snk.Name,
		Brand:     snk.Brand,
		Image:     snk.PrimaryImage(),
		UnitPrice: snk.Price,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}
	c.Lines = append(c.Lines, line)
	c.touch()
	return line
}

// RemoveItem deletes the line with the given key. Removing an absent key is
// a no-op, not an error.
func (c *Cart) RemoveItem(key LineKey) bool {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// SetQuantity replaces the quantity of the line with the given key. A
// quantity below 1 is ignored rather than treated as a removal; the line is
// left unchanged.
func (c *Cart) SetQuantity(key LineKey, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity = quantity
			c.touch()
			return true
		}
	}
	return false
}

// Clear empties the line collection unconditionally
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.touch()
}

// Find returns the line with the given key if present
func (c *Cart) Find(key LineKey) (Line, bool) {
	for _, l := range c.Lines {
		if l.Key() == key {
			return l, true
		}
	}
	return Line{}, false
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalQuantity returns the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
