package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"intown-api/internal/service"
)

// AuthHandler handles the OTP login flow.
type AuthHandler struct {
	service AuthService
}

// Service interface for dependency injection.
type AuthService interface {
	SendOTP(ctx context.Context, phone string) (string, error)
	VerifyOTP(ctx context.Context, phone, code string) service.AuthResult
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

type sendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// SendOTP handles POST /api/send-otp requests. The issued code is
// echoed back because no SMS gateway is attached.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone number is required"})
		return
	}

	code, err := h.service.SendOTP(c.Request.Context(), req.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone number is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully",
		"otp":     code,
	})
}

// VerifyOTP handles POST /api/verify-otp requests.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and otp are required"})
		return
	}

	result := h.service.VerifyOTP(c.Request.Context(), req.Phone, req.OTP)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
