// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockStatus is the display-level availability of a sneaker. Stock is
// advisory state for the storefront, not a reservation system.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusLimited    StockStatus = "Limited Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
)

// Sneaker represents a purchasable sneaker in the catalog
type Sneaker struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	SKU         string          `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Name        string          `gorm:"not null;size:255" json:"name"`
	Brand       string          `gorm:"not null;size:100;index" json:"brand"`
	Slug        string          `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Rating      float64         `gorm:"default:0" json:"rating"`
	ReviewCount int             `gorm:"default:0" json:"reviews"`
	StockStatus StockStatus     `gorm:"size:20;default:'In Stock'" json:"stock_status"`
	StockCount  int             `gorm:"default:0" json:"stock_count"`
	IsFeatured  bool            `gorm:"default:false" json:"is_featured"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Sizes  []SneakerSize  `gorm:"foreignKey:SneakerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sizes,omitempty"`
	Images []SneakerImage `gorm:"foreignKey:SneakerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
	Colors []SneakerColor `gorm:"foreignKey:SneakerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"colors,omitempty"`
}

// SneakerSize represents a numeric size variant offered for a sneaker
type SneakerSize struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SneakerID uint    `gorm:"not null;index" json:"sneaker_id"`
	Size      float64 `gorm:"not null" json:"size"`
}

// SneakerImage represents sneaker product images
type SneakerImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SneakerID uint   `gorm:"not null;index" json:"sneaker_id"`
	URL       string `gorm:"not null;size:500" json:"url"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	IsPrimary bool   `gorm:"default:false" json:"is_primary"`
}

// SneakerColor represents a named colorway with its hex value
type SneakerColor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SneakerID uint   `gorm:"not null;index" json:"sneaker_id"`
	Name      string `gorm:"not null;size:100" json:"name"`
	Hex       string `gorm:"not null;size:7" json:"hex"`
}

// TableName overrides
func (Sneaker) TableName() string      { return "sneakers" }
func (SneakerSize) TableName() string  { return "sneaker_sizes" }
func (SneakerImage) TableName() string { return "sneaker_images" }
func (SneakerColor) TableName() string { return "sneaker_colors" }

// Business methods for Sneaker

// HasSize reports whether the sneaker is offered in the given size
func (s *Sneaker) HasSize(size float64) bool {
	for _, v := range s.Sizes {
		if v.Size == size {
			return true
		}
	}
	return false
}

// PrimaryImage returns the primary image URL, or the first image as fallback
func (s *Sneaker) PrimaryImage() string {
	for _, img := range s.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(s.Images) > 0 {
		return s.Images[0].URL
	}
	return ""
}

// IsLowStock reports whether the remaining stock is at or below the
// storefront's low-stock notice threshold
func (s *Sneaker) IsLowStock() bool {
	return s.StockStatus != StockStatusOutOfStock && s.StockCount > 0 && s.StockCount <= 5
}
