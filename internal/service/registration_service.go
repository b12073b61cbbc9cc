package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CustomerRegistration is the customer sign-up payload.
type CustomerRegistration struct {
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Email     string  `json:"email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// MerchantRegistration is the merchant sign-up payload.
type MerchantRegistration struct {
	ShopName    string  `json:"shop_name" binding:"required"`
	ContactName string  `json:"contact_name" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
}

// RegistrationResult reports a completed registration.
type RegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// RegistrationService registers customers and merchants. The upstream
// onboarding API is not wired in yet, so registrations are
// acknowledged locally with generated ids.
type RegistrationService struct{}

// NewRegistrationService creates a new registration service.
func NewRegistrationService() *RegistrationService {
	return &RegistrationService{}
}

// RegisterCustomer acknowledges a customer registration.
func (s *RegistrationService) RegisterCustomer(_ context.Context, reg CustomerRegistration) (RegistrationResult, error) {
	if reg.Name == "" || reg.Phone == "" {
		return RegistrationResult{}, fmt.Errorf("service: customer name and phone are required")
	}

	return RegistrationResult{
		Success: true,
		Message: "Member registered successfully",
		ID:      "MEM" + strings.ToUpper(uuid.NewString()[:8]),
	}, nil
}

// RegisterMerchant acknowledges a merchant registration.
func (s *RegistrationService) RegisterMerchant(_ context.Context, reg MerchantRegistration) (RegistrationResult, error) {
	if reg.ShopName == "" || reg.Phone == "" {
		return RegistrationResult{}, fmt.Errorf("service: shop name and phone are required")
	}

	return RegistrationResult{
		Success: true,
		Message: "Merchant registered successfully",
		ID:      "MER" + strings.ToUpper(uuid.NewString()[:8]),
	}, nil
}
