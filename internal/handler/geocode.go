package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"intown-api/internal/models"
)

// GeoCodeHandler handles forward location search requests.
type GeoCodeHandler struct {
	service GeoCodeService
}

// Service interface for dependency injection.
type GeoCodeService interface {
	Search(ctx context.Context, query string) []models.LocationSearchResult
}

// NewGeoCodeHandler creates a new geocode handler.
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests.
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	results := h.service.Search(c.Request.Context(), query)

	c.JSON(http.StatusOK, results)
}
