// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
)

// Service handles cart business logic. The cart lives in Redis for the
// lifetime of the visitor session and is rebuilt empty once the session key
// expires; there is no durable cart storage.
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
	notifier    notify.Notifier
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
		notifier:    notifier,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Size      float64 `json:"size" binding:"required"`
}

// UpdateCartItemRequest represents update cart item request. Quantity has
// no binding floor: values below 1 must reach Cart.SetQuantity and be
// ignored there, not rejected at the boundary.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents a shopping cart with items and derived totals
type CartResponse struct {
	Items         []Line        `json:"items"`
	ItemCount     int           `json:"item_count"`
	TotalQuantity int           `json:"total_quantity"`
	Totals        Totals        `json:"totals"`
	Display       DisplayTotals `json:"display"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// GetCart retrieves the cart for a user or guest session
func (s *Service) GetCart(userID *uint, sessionID string) (*CartResponse, error) {
	c, err := s.loadCart(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// AddToCart adds one unit of a sneaker in the requested size. A repeated
// add of the same (sneaker, size) increments the existing line. The add
// itself never fails; only an unknown or inactive sneaker is rejected.
func (s *Service) AddToCart(userID *uint, sessionID string, req *AddToCartRequest) (*CartResponse, error) {
	var snk catalog.Sneaker
	result := s.db.Preload("Sizes").Preload("Images").
		Where("id = ? AND is_active = ?", req.ProductID, true).First(&snk)
	if result.Error != nil {
		return nil, fmt.Errorf("sneaker not found or inactive")
	}

	if !snk.HasSize(req.Size) {
		return nil, fmt.Errorf("size %g is not offered for %s", req.Size, snk.Name)
	}

	c, err := s.loadCart(userID, sessionID)
	if err != nil {
		return nil, err
	}

	line := c.AddItem(&snk, req.Size)

	if err := s.saveCart(userID, sessionID, c); err != nil {
		return nil, err
	}

	// One toast per successful add; no-op paths never reach here.
	s.notifier.Success(recipient(userID, sessionID), fmt.Sprintf("%s added to cart!", line.Name))

	return s.respond(c), nil
}

// UpdateQuantity replaces a line's quantity. A requested quantity below 1
// is ignored and the cart is returned unchanged; this is a guard, not a
// removal trigger.
func (s *Service) UpdateQuantity(userID *uint, sessionID string, key LineKey, req *UpdateCartItemRequest) (*CartResponse, error) {
	c, err := s.loadCart(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if c.SetQuantity(key, req.Quantity) {
		if err := s.saveCart(userID, sessionID, c); err != nil {
			return nil, err
		}
	}

	return s.respond(c), nil
}

// RemoveFromCart deletes a line. Removing an absent line leaves the cart
// unchanged and is not an error.
func (s *Service) RemoveFromCart(userID *uint, sessionID string, key LineKey) (*CartResponse, error) {
	c, err := s.loadCart(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if c.RemoveItem(key) {
		if err := s.saveCart(userID, sessionID, c); err != nil {
			return nil, err
		}
	}

	return s.respond(c), nil
}

// ClearCart removes all lines from the cart
func (s *Service) ClearCart(userID *uint, sessionID string) error {
	ctx := context.Background()
	return s.redisClient.Del(ctx, s.cartKey(userID, sessionID)).Err()
}

// GetCartItemCount returns the total quantity across all lines
func (s *Service) GetCartItemCount(userID *uint, sessionID string) (int, error) {
	c, err := s.loadCart(userID, sessionID)
	if err != nil {
		return 0, nil
	}
	return c.TotalQuantity(), nil
}

// MergeGuestCartToUser merges the guest session cart into the user cart
// when a visitor signs in. Matching lines combine quantities; the guest
// cart is cleared afterwards.
func (s *Service) MergeGuestCartToUser(userID uint, sessionID string) error {
	guest, err := s.loadCart(nil, sessionID)
	if err != nil || guest.IsEmpty() {
		return nil
	}

	userCart, err := s.loadCart(&userID, "")
	if err != nil {
		return err
	}

	for _, guestLine := range guest.Lines {
		key := guestLine.Key()
		if existing, ok := userCart.Find(key); ok {
			userCart.SetQuantity(key, existing.Quantity+guestLine.Quantity)
		} else {
			userCart.Lines = append(userCart.Lines, guestLine)
		}
	}
	userCart.UpdatedAt = time.Now().UTC()

	if err := s.saveCart(&userID, "", userCart); err != nil {
		return err
	}

	return s.ClearCart(nil, sessionID)
}

// Private helper methods

func (s *Service) loadCart(userID *uint, sessionID string) (*Cart, error) {
	key := s.cartKey(userID, sessionID)
	if key == "" {
		return nil, fmt.Errorf("session ID required for guest cart")
	}

	ctx := context.Background()

	data, err := s.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		// No stored cart, start empty
		return New(), nil
	} else if err != nil {
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) saveCart(userID *uint, sessionID string, c *Cart) error {
	ctx := context.Background()

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	return s.redisClient.Set(ctx, s.cartKey(userID, sessionID), data, s.config.Cart.SessionTTL).Err()
}

func (s *Service) cartKey(userID *uint, sessionID string) string {
	if userID != nil {
		return fmt.Sprintf("cart:user:%d", *userID)
	}
	if sessionID == "" {
		return ""
	}
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) respond(c *Cart) *CartResponse {
	totals := Price(c.Lines)
	return &CartResponse{
		Items:         c.Lines,
		ItemCount:     len(c.Lines),
		TotalQuantity: c.TotalQuantity(),
		Totals:        totals,
		Display:       totals.Display(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func recipient(userID *uint, sessionID string) string {
	if userID != nil {
		return fmt.Sprintf("user:%d", *userID)
	}
	return fmt.Sprintf("session:%s", sessionID)
}
