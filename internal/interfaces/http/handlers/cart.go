// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/cart"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, redisClient, cfg, notifier),
		config:      cfg,
	}
}

// cartOwner resolves who the cart belongs to: the signed-in user if
// present, otherwise the guest session.
func cartOwner(c *gin.Context) (*uint, string) {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return &userID, ""
	}
	return nil, middleware.GetSessionIDFromContext(c)
}

// GetCart returns the current cart with its totals
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, sessionID := cartOwner(c)

	response, err := h.cartService.GetCart(userID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": response,
	})
}

// AddToCart adds a sneaker in a chosen size to the cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID, sessionID := cartOwner(c)

	response, err := h.cartService.AddToCart(userID, sessionID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    response,
	})
}

// UpdateCartItem sets the quantity of a cart line
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	key, ok := lineKeyFromParams(c)
	if !ok {
		return
	}

	var req cart.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID, sessionID := cartOwner(c)

	response, err := h.cartService.UpdateQuantity(userID, sessionID, key, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    response,
	})
}

// RemoveFromCart removes a line from the cart
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	key, ok := lineKeyFromParams(c)
	if !ok {
		return
	}

	userID, sessionID := cartOwner(c)

	response, err := h.cartService.RemoveFromCart(userID, sessionID, key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    response,
	})
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, sessionID := cartOwner(c)

	if err := h.cartService.ClearCart(userID, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// GetCartCount returns the number of sneakers in the cart, for the
// navbar badge
func (h *CartHandler) GetCartCount(c *gin.Context) {
	userID, sessionID := cartOwner(c)

	count, err := h.cartService.GetCartItemCount(userID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get cart count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"count": count,
		},
	})
}

// lineKeyFromParams reads the sneaker ID and size that identify a cart
// line from the URL
func lineKeyFromParams(c *gin.Context) (cart.LineKey, bool) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return cart.LineKey{}, false
	}

	size, err := strconv.ParseFloat(c.Param("size"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid size",
		})
		return cart.LineKey{}, false
	}

	return cart.LineKey{ProductID: uint(productID), Size: size}, true
}
