// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status represents order status
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order represents a placed order. Delivery details are embedded so the
// order keeps its own copy even if the profile address changes later.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNumber string          `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Status      Status          `gorm:"size:20;default:'confirmed'" json:"status"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"tax"`
	Shipping    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"shipping"`
	Total       decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"total"`
	PromoCode   string          `gorm:"size:50" json:"promo_code,omitempty"`

	// Delivery address snapshot
	ShipFirstName  string `gorm:"size:100" json:"ship_first_name"`
	ShipLastName   string `gorm:"size:100" json:"ship_last_name"`
	ShipStreet     string `gorm:"size:255" json:"ship_street"`
	ShipCity       string `gorm:"size:100" json:"ship_city"`
	ShipPostalCode string `gorm:"size:20" json:"ship_postal_code"`
	ShipPhone      string `gorm:"size:20" json:"ship_phone"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// OrderItem represents one purchased line. Name, brand and unit price are
// copied from the cart line at checkout time.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	SneakerID uint            `gorm:"not null" json:"sneaker_id"`
	Name      string          `gorm:"not null;size:255" json:"name"`
	Brand     string          `gorm:"size:100" json:"brand"`
	Image     string          `gorm:"size:500" json:"image"`
	Size      float64         `gorm:"not null" json:"size"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// TableName overrides the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns unit price times quantity for the item
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalQuantity returns the number of sneakers across all lines
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
