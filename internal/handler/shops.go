package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"intown-api/internal/models"
)

// ShopHandler serves the backend's own shop catalog.
type ShopHandler struct {
	service ShopService
}

// Service interface for dependency injection.
type ShopService interface {
	Shops(ctx context.Context, lat, lon float64, category string) ([]models.Shop, error)
	Plans(ctx context.Context) ([]models.Plan, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(svc ShopService) *ShopHandler {
	return &ShopHandler{service: svc}
}

// Shops handles GET /api/shops requests.
func (h *ShopHandler) Shops(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	result, err := h.service.Shops(c.Request.Context(), lat, lng, c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shops"})
		return
	}

	if result == nil {
		result = []models.Shop{}
	}
	c.JSON(http.StatusOK, result)
}

// Plans handles GET /api/plans requests.
func (h *ShopHandler) Plans(c *gin.Context) {
	plans, err := h.service.Plans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch plans"})
		return
	}

	if plans == nil {
		plans = []models.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

// Categories handles GET /api/categories requests.
func (h *ShopHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}
