package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"intown-api/internal/models"
	"intown-api/internal/store"
)

// LocationService interface for dependency injection.
type LocationService interface {
	ResolveCurrent(ctx context.Context) models.LocationDetails
	Select(ctx context.Context, candidate models.LocationSearchResult) models.LocationDetails
}

// PermissionGate asks for location access and records the outcome.
type PermissionGate interface {
	Request(ctx context.Context) bool
	Check(ctx context.Context) bool
}

// LocationHandler exposes the stored location and the resolution flow.
type LocationHandler struct {
	service   LocationService
	gate      PermissionGate
	locations *store.LocationStore
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(svc LocationService, gate PermissionGate, locations *store.LocationStore) *LocationHandler {
	return &LocationHandler{service: svc, gate: gate, locations: locations}
}

// Current handles GET /api/location. An unset location triggers a full
// resolution so the response always carries a usable address.
func (h *LocationHandler) Current(c *gin.Context) {
	if loc := h.locations.Location(); loc != nil {
		c.JSON(http.StatusOK, loc)
		return
	}

	c.JSON(http.StatusOK, h.service.ResolveCurrent(c.Request.Context()))
}

// Refresh handles POST /api/location/refresh: forces a fresh
// acquisition and reverse geocode.
func (h *LocationHandler) Refresh(c *gin.Context) {
	h.gate.Request(c.Request.Context())
	c.JSON(http.StatusOK, h.service.ResolveCurrent(c.Request.Context()))
}

// Select handles POST /api/location/select: applies a forward-search
// candidate as the active location.
func (h *LocationHandler) Select(c *gin.Context) {
	var candidate models.LocationSearchResult
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location candidate"})
		return
	}

	c.JSON(http.StatusOK, h.service.Select(c.Request.Context(), candidate))
}

// Clear handles DELETE /api/location: the stored location and the
// permission record are both reset.
func (h *LocationHandler) Clear(c *gin.Context) {
	h.locations.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
