// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/cart"
	"github.com/your-org/sneakstore-backend/internal/domain/checkout"
	"github.com/your-org/sneakstore-backend/internal/domain/order"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier, log *logrus.Logger) *CheckoutHandler {
	cartService := cart.NewService(db, redisClient, cfg, notifier)
	orderService := order.NewService(db, cfg)

	return &CheckoutHandler{
		checkoutService: checkout.NewService(redisClient, cfg, cartService, orderService, notifier, log),
		config:          cfg,
	}
}

// GetQuote returns the priced cart as it would be charged
func (h *CheckoutHandler) GetQuote(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	quote, err := h.checkoutService.Quote(userID)
	if err != nil {
		if err == checkout.ErrEmptyCart {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Your cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get checkout quote",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": quote,
	})
}

// PlaceOrder processes the checkout form and places the order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	placed, err := h.checkoutService.PlaceOrder(userID, &req)
	if err != nil {
		switch err {
		case checkout.ErrCheckoutInProgress:
			c.JSON(http.StatusConflict, gin.H{
				"error": "A checkout is already in progress",
			})
		case checkout.ErrEmptyCart:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Your cart is empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to place order",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}
