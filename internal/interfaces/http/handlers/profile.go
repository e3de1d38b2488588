// internal/interfaces/http/handlers/profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/user"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// ProfileHandler handles user profile endpoints
type ProfileHandler struct {
	userService *user.Service
	config      *config.Config
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{
		userService: user.NewService(db, redisClient, cfg),
		config:      cfg,
	}
}

// GetProfile returns the signed-in user's profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": profile,
	})
}

// UpdateProfile updates the signed-in user's profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.userService.UpdateProfile(userID, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// GetDefaultAddress returns the user's default delivery address, used to
// prefill the checkout form
func (h *ProfileHandler) GetDefaultAddress(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	address, err := h.userService.GetDefaultAddress(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No default address found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": address,
	})
}

// SaveAddress stores a delivery address on the profile
func (h *ProfileHandler) SaveAddress(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var address user.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	saved, err := h.userService.SaveAddress(userID, &address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save address",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address saved successfully",
		"data":    saved,
	})
}
