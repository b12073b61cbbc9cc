package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"intown-api/internal/service"
)

// PaymentHandler handles payment submissions.
type PaymentHandler struct {
	service PaymentService
}

// Service interface for dependency injection.
type PaymentService interface {
	Process(ctx context.Context, req service.PaymentRequest) (service.PaymentResult, error)
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// Pay handles POST /api/payment requests.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req service.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment request"})
		return
	}

	result, err := h.service.Process(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment request"})
		return
	}

	c.JSON(http.StatusOK, result)
}
