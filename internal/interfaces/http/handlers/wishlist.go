// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/cart"
	"github.com/your-org/sneakstore-backend/internal/domain/wishlist"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
	config          *config.Config
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier) *WishlistHandler {
	cartService := cart.NewService(db, redisClient, cfg, notifier)

	return &WishlistHandler{
		wishlistService: wishlist.NewService(db, cfg, cartService),
		config:          cfg,
	}
}

// GetWishlist returns the user's wishlist with price-drop and low-stock
// callouts
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	response, err := h.wishlistService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": response,
	})
}

// AddToWishlist saves a sneaker to the wishlist
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req wishlist.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	item, err := h.wishlistService.Add(userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Added to wishlist",
		"data":    item,
	})
}

// RemoveFromWishlist removes a sneaker from the wishlist
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sneakerID, err := strconv.ParseUint(c.Param("sneakerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sneaker ID",
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.wishlistService.Remove(userID, uint(sneakerID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove from wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Removed from wishlist",
	})
}

// MoveToCart moves a wishlist entry into the cart at the chosen size
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	sneakerID, err := strconv.ParseUint(c.Param("sneakerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sneaker ID",
		})
		return
	}

	var req struct {
		Size float64 `json:"size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.wishlistService.MoveToCart(userID, uint(sneakerID), req.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Moved to cart",
	})
}
