package models

import "github.com/shopspring/decimal"

// ReconciliationResult pairs an internal payment side with an external
// invoice side for one (customer key, month key). Differences are computed
// internal-minus-external, with zero standing in for an absent side, so a
// one-sided pairing flags its full amount as the discrepancy.
type ReconciliationResult struct {
	CustomerKey      string          `json:"customer_key"`
	MonthKey         string          `json:"month_key"`
	Payment          *Payment        `json:"payment,omitempty"`
	Invoice          *ZohoInvoice    `json:"invoice,omitempty"`
	InternalAmount   decimal.Decimal `json:"internal_amount"`
	InternalBase     decimal.Decimal `json:"internal_base"`
	InternalGst      decimal.Decimal `json:"internal_gst"`
	ZohoAmount       decimal.Decimal `json:"zoho_amount"`
	ZohoBase         decimal.Decimal `json:"zoho_base"`
	ZohoGst          decimal.Decimal `json:"zoho_gst"`
	AmountDifference decimal.Decimal `json:"amount_difference"`
	BaseDifference   decimal.Decimal `json:"base_difference"`
	GstDifference    decimal.Decimal `json:"gst_difference"`
	Status           ReconStatus     `json:"status"`
}

// ReconciliationSummary counts results per status for the caller's view.
type ReconciliationSummary struct {
	Total        int `json:"total"`
	Matched      int `json:"matched"`
	Mismatched   int `json:"mismatched"`
	InternalOnly int `json:"internal_only"`
	ZohoOnly     int `json:"zoho_only"`
}
