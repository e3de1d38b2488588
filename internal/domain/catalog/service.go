// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/your-org/sneakstore-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles sneaker catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListRequest represents catalog listing filters
type ListRequest struct {
	Brand    string `form:"brand"`
	Size     string `form:"size"`
	MinPrice string `form:"min_price"`
	MaxPrice string `form:"max_price"`
	Search   string `form:"search"`
	Featured bool   `form:"featured"`
	SortBy   string `form:"sort_by"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// ListResponse represents a paginated catalog listing
type ListResponse struct {
	Sneakers   []Sneaker `json:"sneakers"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

// List returns active sneakers matching the given filters
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.Model(&Sneaker{}).Where("is_active = ?", true)

	if req.Brand != "" {
		query = query.Where("LOWER(brand) = ?", strings.ToLower(req.Brand))
	}
	if req.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if req.Search != "" {
		term := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", term, term)
	}
	if req.Size != "" {
		size, err := parseSize(req.Size)
		if err != nil {
			return nil, err
		}
		query = query.Where("id IN (?)",
			s.db.Model(&SneakerSize{}).Select("sneaker_id").Where("size = ?", size))
	}
	if req.MinPrice != "" {
		min, err := decimal.NewFromString(req.MinPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid min_price: %s", req.MinPrice)
		}
		query = query.Where("price >= ?", min)
	}
	if req.MaxPrice != "" {
		max, err := decimal.NewFromString(req.MaxPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid max_price: %s", req.MaxPrice)
		}
		query = query.Where("price <= ?", max)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count sneakers: %w", err)
	}

	switch req.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "rating":
		query = query.Order("rating DESC")
	case "newest":
		query = query.Order("created_at DESC")
	default:
		query = query.Order("is_featured DESC, rating DESC")
	}

	var sneakers []Sneaker
	offset := (req.Page - 1) * req.Limit
	err := query.Preload("Sizes").Preload("Images").Preload("Colors").
		Offset(offset).Limit(req.Limit).Find(&sneakers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sneakers: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &ListResponse{
		Sneakers:   sneakers,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetFeatured returns the featured sneakers for the landing page
func (s *Service) GetFeatured(limit int) ([]Sneaker, error) {
	if limit < 1 || limit > 20 {
		limit = 8
	}

	var sneakers []Sneaker
	err := s.db.Where("is_active = ? AND is_featured = ?", true, true).
		Preload("Sizes").Preload("Images").Preload("Colors").
		Order("rating DESC").Limit(limit).Find(&sneakers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get featured sneakers: %w", err)
	}
	return sneakers, nil
}

// GetByID returns a single active sneaker with its sizes, images and colors
func (s *Service) GetByID(id uint) (*Sneaker, error) {
	var sneaker Sneaker
	err := s.db.Where("id = ? AND is_active = ?", id, true).
		Preload("Sizes").Preload("Images").Preload("Colors").
		First(&sneaker).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("sneaker not found")
		}
		return nil, fmt.Errorf("failed to get sneaker: %w", err)
	}
	return &sneaker, nil
}

// GetBySlug returns a sneaker by brand and slug, the product page address
func (s *Service) GetBySlug(brand, slug string) (*Sneaker, error) {
	var sneaker Sneaker
	err := s.db.Where("LOWER(brand) = ? AND slug = ? AND is_active = ?",
		strings.ToLower(brand), slug, true).
		Preload("Sizes").Preload("Images").Preload("Colors").
		First(&sneaker).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("sneaker not found")
		}
		return nil, fmt.Errorf("failed to get sneaker: %w", err)
	}
	return &sneaker, nil
}

// GetBrands returns the distinct brands carried in the catalog
func (s *Service) GetBrands() ([]string, error) {
	var brands []string
	err := s.db.Model(&Sneaker{}).Where("is_active = ?", true).
		Distinct("brand").Order("brand ASC").Pluck("brand", &brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get brands: %w", err)
	}
	return brands, nil
}

func parseSize(raw string) (float64, error) {
	var size float64
	if _, err := fmt.Sscanf(raw, "%f", &size); err != nil {
		return 0, fmt.Errorf("invalid size: %s", raw)
	}
	return size, nil
}
