// internal/domain/wishlist/service.go
package wishlist

import (
	"fmt"

	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/cart"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Service handles wishlist business logic
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
}

// NewService creates a new wishlist service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cartService,
	}
}

// AddRequest represents a wishlist add payload
type AddRequest struct {
	SneakerID    uint    `json:"sneaker_id" binding:"required"`
	SizeInterest float64 `json:"size_interest"`
}

// EntryResponse is a wishlist entry with its derived notices
type EntryResponse struct {
	Item    Item     `json:"item"`
	Notices []Notice `json:"notices,omitempty"`
}

// ListResponse represents the full wishlist for a user
type ListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
}

// Add saves a sneaker to the user's wishlist with a price snapshot.
// Adding a sneaker that is already saved is a no-op.
func (s *Service) Add(userID uint, req *AddRequest) (*Item, error) {
	var sneaker catalog.Sneaker
	if err := s.db.Where("id = ? AND is_active = ?", req.SneakerID, true).First(&sneaker).Error; err != nil {
		return nil, fmt.Errorf("sneaker not found")
	}

	var existing Item
	result := s.db.Where("user_id = ? AND sneaker_id = ?", userID, req.SneakerID).First(&existing)
	if result.Error == nil {
		return &existing, nil
	}

	item := Item{
		UserID:       userID,
		SneakerID:    req.SneakerID,
		PriceAtSave:  sneaker.Price,
		SizeInterest: req.SizeInterest,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add to wishlist: %w", err)
	}

	item.Sneaker = sneaker
	return &item, nil
}

// List returns the user's wishlist with notices derived against the
// current catalog state
func (s *Service) List(userID uint) (*ListResponse, error) {
	var items []Item
	err := s.db.Preload("Sneaker").Preload("Sneaker.Images").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	entries := make([]EntryResponse, 0, len(items))
	for i := range items {
		entries = append(entries, EntryResponse{
			Item:    items[i],
			Notices: Notices(&items[i], &items[i].Sneaker),
		})
	}

	return &ListResponse{Entries: entries, Count: len(entries)}, nil
}

// Remove deletes a sneaker from the user's wishlist. Removing an absent
// sneaker is a no-op.
func (s *Service) Remove(userID, sneakerID uint) error {
	result := s.db.Where("user_id = ? AND sneaker_id = ?", userID, sneakerID).Delete(&Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", result.Error)
	}
	return nil
}

// MoveToCart puts the wishlist entry into the cart at the given size and
// drops it from the wishlist. The cart gets the current catalog price,
// not the saved snapshot.
func (s *Service) MoveToCart(userID uint, sneakerID uint, size float64) error {
	var item Item
	if err := s.db.Where("user_id = ? AND sneaker_id = ?", userID, sneakerID).First(&item).Error; err != nil {
		return fmt.Errorf("sneaker is not on the wishlist")
	}

	_, err := s.cartService.AddToCart(&userID, "", &cart.AddToCartRequest{
		ProductID: sneakerID,
		Size:      size,
	})
	if err != nil {
		return err
	}

	return s.Remove(userID, sneakerID)
}
