package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"intown-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SendOTP(ctx context.Context, phone string) (string, error) {
	args := m.Called(ctx, phone)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, phone, code string) service.AuthResult {
	args := m.Called(ctx, phone, code)
	return args.Get(0).(service.AuthResult)
}

func postJSON(handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler(c)
	return w
}

func TestAuthHandler_SendOTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("issues code", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("SendOTP", mock.Anything, "+919876543210").Return("4821", nil)

		w := postJSON(NewAuthHandler(mockSvc).SendOTP, "/api/send-otp", `{"phone": "+919876543210"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "4821", body["otp"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing phone", func(t *testing.T) {
		mockSvc := new(MockAuthService)

		w := postJSON(NewAuthHandler(mockSvc).SendOTP, "/api/send-otp", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "SendOTP", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid code", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("VerifyOTP", mock.Anything, "+919876543210", "4821").
			Return(service.AuthResult{Success: true, Message: "OTP verified successfully", Token: "tok-1"})

		w := postJSON(NewAuthHandler(mockSvc).VerifyOTP, "/api/verify-otp", `{"phone": "+919876543210", "otp": "4821"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var result service.AuthResult
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, "tok-1", result.Token)
	})

	t.Run("invalid code", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("VerifyOTP", mock.Anything, "+919876543210", "0000").
			Return(service.AuthResult{Success: false, Message: "Invalid OTP"})

		w := postJSON(NewAuthHandler(mockSvc).VerifyOTP, "/api/verify-otp", `{"phone": "+919876543210", "otp": "0000"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing otp", func(t *testing.T) {
		mockSvc := new(MockAuthService)

		w := postJSON(NewAuthHandler(mockSvc).VerifyOTP, "/api/verify-otp", `{"phone": "+919876543210"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "VerifyOTP", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegistrationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("register customer", func(t *testing.T) {
		svc := service.NewRegistrationService()
		handler := NewRegistrationHandler(svc)

		w := postJSON(handler.RegisterCustomer, "/api/customer", `{"name": "Anita", "phone": "+919876543210"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var result service.RegistrationResult
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.True(t, strings.HasPrefix(result.ID, "MEM"))
	})

	t.Run("register merchant", func(t *testing.T) {
		svc := service.NewRegistrationService()
		handler := NewRegistrationHandler(svc)

		w := postJSON(handler.RegisterMerchant, "/api/merchant", `{"shop_name": "Sri Balaji Kirana", "contact_name": "Ravi", "phone": "+919876543210"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var result service.RegistrationResult
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.True(t, strings.HasPrefix(result.ID, "MER"))
	})

	t.Run("customer missing phone", func(t *testing.T) {
		svc := service.NewRegistrationService()
		handler := NewRegistrationHandler(svc)

		w := postJSON(handler.RegisterCustomer, "/api/customer", `{"name": "Anita"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
