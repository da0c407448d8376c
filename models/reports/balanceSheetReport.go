package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"github.com/shopspring/decimal"
)

type BalanceSheetItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type BalanceSheetSection struct {
	Label string             `json:"label"`
	Items []BalanceSheetItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type BalanceSheetResponse struct {
	ReportType       models.ReportType   `json:"report_type"`
	AsOfDate         time.Time           `json:"as_of_date"`
	Assets           BalanceSheetSection `json:"assets"`
	Liabilities      BalanceSheetSection `json:"liabilities"`
	Equity           BalanceSheetSection `json:"equity"`
	RetainedEarnings decimal.Decimal     `json:"retained_earnings"`
}

// BuildBalanceSheet is a point-in-time view. Retained earnings is all-time
// revenue minus all-time expenses; it only appears as a cash asset when
// positive. No liability model exists upstream, so that section stays empty.
func BuildBalanceSheet(leases []models.Lease, payments []models.Payment, expenses []models.Expense, asOf time.Time) *BalanceSheetResponse {
	var revenue, spent decimal.Decimal
	for i := range payments {
		revenue = revenue.Add(payments[i].Amount)
	}
	for i := range expenses {
		spent = spent.Add(expenses[i].Amount)
	}
	retained := revenue.Sub(spent)

	var deposits decimal.Decimal
	for i := range leases {
		deposits = deposits.Add(leases[i].SecurityDeposit)
	}

	cash := retained
	if cash.IsNegative() {
		cash = decimal.Zero
	}

	response := &BalanceSheetResponse{
		ReportType:       models.ReportTypeBalanceSheet,
		AsOfDate:         asOf,
		RetainedEarnings: retained,
	}
	response.Assets = BalanceSheetSection{
		Label: "Assets",
		Items: []BalanceSheetItem{
			{Name: "Security Deposits Held", Amount: deposits},
			{Name: "Cash & Bank", Amount: cash},
		},
		Total: deposits.Add(cash),
	}
	response.Liabilities = BalanceSheetSection{
		Label: "Liabilities",
		Items: []BalanceSheetItem{},
		Total: decimal.Zero,
	}
	response.Equity = BalanceSheetSection{
		Label: "Equity",
		Items: []BalanceSheetItem{
			{Name: "Retained Earnings", Amount: retained},
		},
		Total: retained,
	}
	return response
}

func GetBalanceSheetReport(ctx context.Context, asOfDate models.DateString) (*BalanceSheetResponse, error) {
	asOf, err := asOfDate.EndOfDayUTC()
	if err != nil {
		return nil, err
	}

	cacheKey := reportCacheKey(models.ReportTypeBalanceSheet, string(asOfDate))
	if reportCacheEnabled() {
		var cached BalanceSheetResponse
		if ok, _ := cacheGet(cacheKey, &cached); ok {
			return &cached, nil
		}
	}

	leases, err := models.GetActiveLeases(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := models.GetAllPayments(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := models.GetAllExpenses(ctx)
	if err != nil {
		return nil, err
	}

	response := BuildBalanceSheet(leases, payments, expenses, asOf)
	if reportCacheEnabled() {
		_ = cacheSet(cacheKey, response, reportCacheTTL())
	}
	return response, nil
}
