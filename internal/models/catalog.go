package models

// Plan is a subscription plan shown on the plans screen.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PricePerMonth float64  `json:"price_per_month"`
	Benefits      []string `json:"benefits"`
	Savings       float64  `json:"savings"`
}

// Category is a merchant category used for dashboard filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CustomerTransaction is one entry of a customer's purchase history as
// reported by the merchant transactions API.
type CustomerTransaction struct {
	TransactionID   string  `json:"transactionId"`
	TransactionDate string  `json:"transactionDate"`
	MerchantName    string  `json:"merchantName"`
	TotalBillAmount float64 `json:"totalBillAmount"`
	FinalPaidAmount float64 `json:"finalPaidAmount"`
	SavedAmount     float64 `json:"savedAmount"`
}

// MerchantSale is one entry of a merchant's sales history.
type MerchantSale struct {
	TransactionID       string  `json:"transactionId"`
	TransactionDate     string  `json:"transactionDate"`
	CustomerName        string  `json:"customerName"`
	TotalSalesValue     float64 `json:"totalSalesValue"`
	TotalAmountReceived float64 `json:"totalAmountReceived"`
}

// PeriodTotals aggregates saved or sold amounts for one reporting window.
type PeriodTotals struct {
	TotalSavedAmount float64 `json:"totalSavedAmount"`
	TotalSalesValue  float64 `json:"totalSalesValue"`
}

// TransactionSummary is the per-period breakdown the dashboards render
// alongside a transaction list.
type TransactionSummary struct {
	Today     *PeriodTotals `json:"today"`
	ThisMonth *PeriodTotals `json:"thisMonth"`
	ThisYear  *PeriodTotals `json:"thisYear"`
}
