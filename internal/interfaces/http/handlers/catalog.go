// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// CatalogHandler handles sneaker catalog endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// GetSneakers returns the catalog listing with filters
func (h *CatalogHandler) GetSneakers(c *gin.Context) {
	var req catalog.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response, err := h.catalogService.List(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": response,
	})
}

// GetFeatured returns featured sneakers for the landing page
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	sneakers, err := h.catalogService.GetFeatured(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get featured sneakers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": sneakers,
	})
}

// GetSneaker returns a single sneaker by ID
func (h *CatalogHandler) GetSneaker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sneaker ID",
		})
		return
	}

	sneaker, err := h.catalogService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Sneaker not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": sneaker,
	})
}

// GetSneakerBySlug returns a sneaker by its brand and slug, which is the
// product page URL shape
func (h *CatalogHandler) GetSneakerBySlug(c *gin.Context) {
	brand := c.Param("brand")
	slug := c.Param("slug")

	sneaker, err := h.catalogService.GetBySlug(brand, slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Sneaker not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": sneaker,
	})
}

// GetBrands returns the distinct brands in the catalog, for the filter
// sidebar
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalogService.GetBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get brands",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": brands,
	})
}
