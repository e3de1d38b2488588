// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/cart"
	"github.com/your-org/sneakstore-backend/internal/domain/user"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/sneakstore-backend/internal/pkg/identity"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	userService *user.Service
	cartService *cart.Service
	notifier    notify.Notifier
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier) *AuthHandler {
	return &AuthHandler{
		userService: user.NewService(db, redisClient, cfg),
		cartService: cart.NewService(db, redisClient, cfg, notifier),
		notifier:    notifier,
		config:      cfg,
	}
}

// authError translates a provider failure into the coded message shown
// on the sign-in and sign-up forms, and queues the same message as a
// transient notification. Provider errors stop here; they never
// propagate further.
func (h *AuthHandler) authError(c *gin.Context, status int, err error) {
	classified := identity.Classify(err)
	code := identity.Code(err)

	sessionID := middleware.GetSessionIDFromContext(c)
	if sessionID != "" {
		h.notifier.Error("session:"+sessionID, classified.Message)
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": classified.Message,
		},
	})
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.userService.Register(&req)
	if err != nil {
		h.authError(c, http.StatusConflict, err)
		return
	}

	h.mergeGuestCart(c, response.User.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data":    response,
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.userService.Login(&req)
	if err != nil {
		h.authError(c, http.StatusUnauthorized, err)
		return
	}

	h.mergeGuestCart(c, response.User.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    response,
	})
}

// RefreshToken handles token refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.userService.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"data":    response,
	})
}

// ForgotPassword starts a password reset for the given email
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	token, err := h.userService.RequestPasswordReset(req.Email)
	if err != nil {
		h.authError(c, http.StatusNotFound, err)
		return
	}

	resp := gin.H{"message": "Password reset instructions sent"}
	if h.config.IsDevelopment() {
		// Surfaced in development since there is no mail delivery
		resp["reset_token"] = token
	}
	c.JSON(http.StatusOK, resp)
}

// ResetPassword completes a password reset with the emailed token
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.userService.ResetPassword(req.Token, req.Password); err != nil {
		h.authError(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset successfully",
	})
}

// Logout handles user logout. Tokens are stateless; the client discards
// them, and the guest session keeps its own cart.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// mergeGuestCart folds the guest cart into the user cart after sign-in
func (h *AuthHandler) mergeGuestCart(c *gin.Context, userID uint) {
	sessionID := middleware.GetSessionIDFromContext(c)
	if sessionID == "" {
		return
	}
	// A failed merge never blocks sign-in
	h.cartService.MergeGuestCartToUser(userID, sessionID)
}
