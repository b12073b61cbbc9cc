package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

const otpTTL = 5 * time.Minute

// The fixed code accepted in development builds so the flow works
// without an SMS gateway.
const devOTP = "1234"

// AuthResult reports the outcome of an OTP verification.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type issuedOTP struct {
	code      string
	expiresAt time.Time
}

// AuthService issues and verifies one-time passwords keyed by phone
// number. Codes live in memory with a five minute expiry.
type AuthService struct {
	mu      sync.Mutex
	pending map[string]issuedOTP
	now     func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService() *AuthService {
	return &AuthService{
		pending: make(map[string]issuedOTP),
		now:     time.Now,
	}
}

// SendOTP issues a code for the given phone number. The code is
// returned to the caller because no SMS gateway is attached.
func (s *AuthService) SendOTP(_ context.Context, phone string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("service: phone number is required")
	}

	code := fmt.Sprintf("%04d", rand.Intn(10000))

	s.mu.Lock()
	s.pending[phone] = issuedOTP{code: code, expiresAt: s.now().Add(otpTTL)}
	s.mu.Unlock()

	return code, nil
}

// VerifyOTP checks a submitted code and issues a session token on
// success. The development code is always accepted.
func (s *AuthService) VerifyOTP(_ context.Context, phone, code string) AuthResult {
	if code == devOTP {
		return AuthResult{Success: true, Message: "OTP verified successfully", Token: uuid.NewString()}
	}

	s.mu.Lock()
	issued, ok := s.pending[phone]
	if ok && issued.code == code && s.now().Before(issued.expiresAt) {
		delete(s.pending, phone)
		s.mu.Unlock()
		return AuthResult{Success: true, Message: "OTP verified successfully", Token: uuid.NewString()}
	}
	s.mu.Unlock()

	return AuthResult{Success: false, Message: "Invalid OTP"}
}
