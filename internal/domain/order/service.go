// internal/domain/order/service.go
package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/your-org/sneakstore-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// HistoryResponse represents a paginated order history
type HistoryResponse struct {
	Orders     []Order `json:"orders"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

// Create persists a new order with its items in one transaction
func (s *Service) Create(order *Order) error {
	number, err := s.generateOrderNumber()
	if err != nil {
		return fmt.Errorf("failed to generate order number: %w", err)
	}
	order.OrderNumber = number

	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID returns the user's order with its items
func (s *Service) GetByID(userID, orderID uint) (*Order, error) {
	var order Order
	err := s.db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// GetByNumber returns the user's order by its order number
func (s *Service) GetByNumber(userID uint, orderNumber string) (*Order, error) {
	var order Order
	err := s.db.Preload("Items").
		Where("order_number = ? AND user_id = ?", orderNumber, userID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// History returns the user's orders, newest first
func (s *Service) History(userID uint, page, limit int) (*HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []Order
	offset := (page - 1) * limit
	err := s.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &HistoryResponse{
		Orders:     orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// generateOrderNumber produces a number like ORD-20260901-48291
func (s *Service) generateOrderNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%05d", time.Now().UTC().Format("20060102"), n.Int64()), nil
}
