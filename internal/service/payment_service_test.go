package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_Process(t *testing.T) {
	service := NewPaymentService()

	result, err := service.Process(context.Background(), PaymentRequest{Amount: 499, PlanID: "plan2"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.TransactionID, "TXN"))
	assert.InDelta(t, 49.9, result.Savings, 0.001)
	assert.Equal(t, "Payment successful", result.Message)
}

func TestPaymentService_ProcessInvalidAmount(t *testing.T) {
	service := NewPaymentService()

	for _, amount := range []float64{0, -10} {
		_, err := service.Process(context.Background(), PaymentRequest{Amount: amount})
		assert.Error(t, err)
	}
}

func TestPaymentService_UniqueTransactionIDs(t *testing.T) {
	service := NewPaymentService()

	first, err := service.Process(context.Background(), PaymentRequest{Amount: 100})
	require.NoError(t, err)
	second, err := service.Process(context.Background(), PaymentRequest{Amount: 100})
	require.NoError(t, err)

	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}
