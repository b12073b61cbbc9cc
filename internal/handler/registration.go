package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"intown-api/internal/service"
)

// RegistrationHandler handles customer and merchant sign-up.
type RegistrationHandler struct {
	service RegistrationService
}

// Service interface for dependency injection.
type RegistrationService interface {
	RegisterCustomer(ctx context.Context, reg service.CustomerRegistration) (service.RegistrationResult, error)
	RegisterMerchant(ctx context.Context, reg service.MerchantRegistration) (service.RegistrationResult, error)
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: svc}
}

// RegisterCustomer handles POST /api/customer requests.
func (h *RegistrationHandler) RegisterCustomer(c *gin.Context) {
	var reg service.CustomerRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone are required"})
		return
	}

	result, err := h.service.RegisterCustomer(c.Request.Context(), reg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone are required"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterMerchant handles POST /api/merchant requests.
func (h *RegistrationHandler) RegisterMerchant(c *gin.Context) {
	var reg service.MerchantRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shop name, contact name and phone are required"})
		return
	}

	result, err := h.service.RegisterMerchant(c.Request.Context(), reg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shop name, contact name and phone are required"})
		return
	}

	c.JSON(http.StatusOK, result)
}
