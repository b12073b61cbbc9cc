package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Savings credited on a successful payment, as a share of the amount.
const savingsRate = 0.10

// PaymentRequest is a payment submission.
type PaymentRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	PlanID     string  `json:"plan_id"`
	CustomerID string  `json:"customer_id"`
}

// PaymentResult is the outcome of a processed payment.
type PaymentResult struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transaction_id"`
	Message       string  `json:"message"`
	Savings       float64 `json:"savings"`
}

// PaymentService processes payments. There is no real gateway behind
// it: every valid request succeeds with a generated transaction id.
type PaymentService struct{}

// NewPaymentService creates a new payment service.
func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// Process validates and settles a payment.
func (s *PaymentService) Process(_ context.Context, req PaymentRequest) (PaymentResult, error) {
	if req.Amount <= 0 {
		return PaymentResult{}, fmt.Errorf("service: invalid payment amount: %f", req.Amount)
	}

	return PaymentResult{
		Success:       true,
		TransactionID: "TXN" + strings.ToUpper(uuid.NewString()[:8]),
		Message:       "Payment successful",
		Savings:       req.Amount * savingsRate,
	}, nil
}
