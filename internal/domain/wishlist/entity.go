// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
)

// Item represents a saved sneaker on a user's wishlist. The price at the
// time of saving is kept so a later drop can be pointed out.
type Item struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index:idx_wishlist_user_sneaker,unique" json:"user_id"`
	SneakerID    uint            `gorm:"not null;index:idx_wishlist_user_sneaker,unique" json:"sneaker_id"`
	PriceAtSave  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_at_save"`
	SizeInterest float64         `gorm:"default:0" json:"size_interest"`
	CreatedAt    time.Time       `json:"created_at"`

	Sneaker catalog.Sneaker `gorm:"foreignKey:SneakerID" json:"sneaker"`
}

// TableName overrides the table name
func (Item) TableName() string {
	return "wishlist_items"
}

// NoticeKind identifies why a wishlist entry deserves attention
type NoticeKind string

const (
	NoticePriceDrop NoticeKind = "price_drop"
	NoticeLowStock  NoticeKind = "low_stock"
)

// Notice is a derived callout attached to a wishlist entry in responses.
// Notices are computed from the current catalog row on every read and
// never stored.
type Notice struct {
	Kind      NoticeKind      `json:"kind"`
	SneakerID uint            `json:"sneaker_id"`
	OldPrice  decimal.Decimal `json:"old_price,omitempty"`
	NewPrice  decimal.Decimal `json:"new_price,omitempty"`
	Message   string          `json:"message"`
}

// Notices derives the callouts for a wishlist entry against the sneaker's
// current catalog state
func Notices(item *Item, current *catalog.Sneaker) []Notice {
	var notices []Notice

	if current.Price.LessThan(item.PriceAtSave) {
		notices = append(notices, Notice{
			Kind:      NoticePriceDrop,
			SneakerID: current.ID,
			OldPrice:  item.PriceAtSave,
			NewPrice:  current.Price,
			Message:   current.Name + " dropped in price!",
		})
	}

	if current.IsLowStock() {
		notices = append(notices, Notice{
			Kind:      NoticeLowStock,
			SneakerID: current.ID,
			Message:   current.Name + " is almost sold out!",
		})
	}

	return notices
}
