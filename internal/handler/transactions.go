package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"intown-api/internal/models"
	"intown-api/internal/shops"
)

// TransactionsHandler proxies dashboard transaction history from the
// merchant API.
type TransactionsHandler struct {
	client TransactionsClient
}

// Client interface for dependency injection.
type TransactionsClient interface {
	CustomerTransactions(ctx context.Context, customerID string) (shops.CustomerHistory, error)
	MerchantSales(ctx context.Context, merchantID string) (shops.MerchantHistory, error)
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(client TransactionsClient) *TransactionsHandler {
	return &TransactionsHandler{client: client}
}

// CustomerTransactions handles GET /api/transactions/customers/:id.
// Upstream failures degrade to an empty history so dashboards render.
func (h *TransactionsHandler) CustomerTransactions(c *gin.Context) {
	id := c.Param("id")

	history, err := h.client.CustomerTransactions(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("customer_id", id).Msg("failed to fetch customer transactions")
		history = shops.CustomerHistory{Transactions: []models.CustomerTransaction{}}
	}
	if history.Transactions == nil {
		history.Transactions = []models.CustomerTransaction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": history.Transactions,
		"today":        history.Summary.Today,
		"thisMonth":    history.Summary.ThisMonth,
		"thisYear":     history.Summary.ThisYear,
	})
}

// MerchantSales handles GET /api/transactions/merchants/:id.
func (h *TransactionsHandler) MerchantSales(c *gin.Context) {
	id := c.Param("id")

	history, err := h.client.MerchantSales(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("merchant_id", id).Msg("failed to fetch merchant sales")
		history = shops.MerchantHistory{Sales: []models.MerchantSale{}}
	}
	if history.Sales == nil {
		history.Sales = []models.MerchantSale{}
	}

	c.JSON(http.StatusOK, gin.H{
		"sales":     history.Sales,
		"today":     history.Summary.Today,
		"thisMonth": history.Summary.ThisMonth,
		"thisYear":  history.Summary.ThisYear,
	})
}
