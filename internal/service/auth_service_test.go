package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SendAndVerify(t *testing.T) {
	service := NewAuthService()
	ctx := context.Background()

	code, err := service.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	assert.Len(t, code, 4)

	result := service.VerifyOTP(ctx, "9876543210", code)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Token)

	// A code is single use.
	if code != devOTP {
		result = service.VerifyOTP(ctx, "9876543210", code)
		assert.False(t, result.Success)
	}
}

func TestAuthService_DevCodeAlwaysAccepted(t *testing.T) {
	service := NewAuthService()

	result := service.VerifyOTP(context.Background(), "9876543210", devOTP)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_WrongCode(t *testing.T) {
	service := NewAuthService()
	ctx := context.Background()

	code, err := service.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	wrong := "0000"
	if wrong == code || wrong == devOTP {
		wrong = "9999"
	}
	if wrong == code {
		wrong = "8888"
	}

	result := service.VerifyOTP(ctx, "9876543210", wrong)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid OTP", result.Message)
}

func TestAuthService_ExpiredCode(t *testing.T) {
	service := NewAuthService()
	ctx := context.Background()

	code, err := service.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	if code == devOTP {
		t.Skip("generated the development code, expiry not observable")
	}

	service.now = func() time.Time { return time.Now().Add(otpTTL + time.Minute) }

	result := service.VerifyOTP(ctx, "9876543210", code)
	assert.False(t, result.Success)
}

func TestAuthService_SendOTPRequiresPhone(t *testing.T) {
	service := NewAuthService()

	_, err := service.SendOTP(context.Background(), "")
	assert.Error(t, err)
}

func TestRegistrationService(t *testing.T) {
	service := NewRegistrationService()
	ctx := context.Background()

	customer, err := service.RegisterCustomer(ctx, CustomerRegistration{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	assert.True(t, customer.Success)
	assert.True(t, strings.HasPrefix(customer.ID, "MEM"))

	merchant, err := service.RegisterMerchant(ctx, MerchantRegistration{ShopName: "Fresh Mart", ContactName: "Ravi", Phone: "9876500000"})
	require.NoError(t, err)
	assert.True(t, merchant.Success)
	assert.True(t, strings.HasPrefix(merchant.ID, "MER"))

	_, err = service.RegisterCustomer(ctx, CustomerRegistration{})
	assert.Error(t, err)

	_, err = service.RegisterMerchant(ctx, MerchantRegistration{})
	assert.Error(t, err)
}
