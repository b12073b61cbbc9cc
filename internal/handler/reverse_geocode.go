package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"intown-api/internal/models"
)

// ReverseGeocodeHandler handles reverse geocoding requests.
type ReverseGeocodeHandler struct {
	service ReverseGeocodeService
}

// Service interface for dependency injection.
type ReverseGeocodeService interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (models.LocationDetails, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler.
func NewReverseGeocodeHandler(svc ReverseGeocodeService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles GET /reverse-geocode requests.
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	location, err := h.service.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	c.JSON(http.StatusOK, location)
}
