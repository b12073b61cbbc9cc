package shops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"intown-api/internal/models"
)

// CustomerHistory is a customer's transaction list with its per-period
// savings totals.
type CustomerHistory struct {
	Transactions []models.CustomerTransaction `json:"transactions"`
	Summary      models.TransactionSummary
}

// MerchantHistory is a merchant's sales list with its per-period sales
// totals.
type MerchantHistory struct {
	Sales   []models.MerchantSale `json:"sales"`
	Summary models.TransactionSummary
}

type customerTransactionsResponse struct {
	Transactions []models.CustomerTransaction `json:"transactions"`
	Today        *models.PeriodTotals         `json:"today"`
	ThisMonth    *models.PeriodTotals         `json:"thisMonth"`
	ThisYear     *models.PeriodTotals         `json:"thisYear"`
}

type merchantSalesResponse struct {
	Sales     []models.MerchantSale `json:"sales"`
	Today     *models.PeriodTotals  `json:"today"`
	ThisMonth *models.PeriodTotals  `json:"thisMonth"`
	ThisYear  *models.PeriodTotals  `json:"thisYear"`
}

// CustomerTransactions fetches a customer's purchase history.
func (c *Client) CustomerTransactions(ctx context.Context, customerID string) (CustomerHistory, error) {
	body, err := c.get(ctx, "/transactions/customers/"+url.PathEscape(customerID), nil)
	if err != nil {
		return CustomerHistory{}, err
	}

	var resp customerTransactionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return CustomerHistory{}, fmt.Errorf("shops: failed to decode customer transactions: %w", err)
	}

	return CustomerHistory{
		Transactions: resp.Transactions,
		Summary: models.TransactionSummary{
			Today:     resp.Today,
			ThisMonth: resp.ThisMonth,
			ThisYear:  resp.ThisYear,
		},
	}, nil
}

// MerchantSales fetches a merchant's sales history.
func (c *Client) MerchantSales(ctx context.Context, merchantID string) (MerchantHistory, error) {
	body, err := c.get(ctx, "/transactions/merchants/"+url.PathEscape(merchantID), nil)
	if err != nil {
		return MerchantHistory{}, err
	}

	var resp merchantSalesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return MerchantHistory{}, fmt.Errorf("shops: failed to decode merchant sales: %w", err)
	}

	return MerchantHistory{
		Sales: resp.Sales,
		Summary: models.TransactionSummary{
			Today:     resp.Today,
			ThisMonth: resp.ThisMonth,
			ThisYear:  resp.ThisYear,
		},
	}, nil
}
