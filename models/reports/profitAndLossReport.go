package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

type ProfitAndLossResponse struct {
	ReportType         models.ReportType `json:"report_type"`
	FromDate           time.Time         `json:"from_date"`
	ToDate             time.Time         `json:"to_date"`
	Revenue            TotalsBreakdown   `json:"revenue"`
	Expenses           TotalsBreakdown   `json:"expenses"`
	ExpensesByCategory []GroupEntry      `json:"expenses_by_category"`
	GrossProfit        decimal.Decimal   `json:"gross_profit"`
	NetProfit          decimal.Decimal   `json:"net_profit"`
	NetGstPayable      decimal.Decimal   `json:"net_gst_payable"`
}

// BuildProfitAndLoss aggregates payments and expenses already fetched for
// the range. Gross profit compares base amounts, net profit compares gross
// amounts; the difference between the two is the tax component.
func BuildProfitAndLoss(payments []models.Payment, expenses []models.Expense, from, to time.Time) *ProfitAndLossResponse {
	response := &ProfitAndLossResponse{
		ReportType: models.ReportTypeProfitLoss,
		FromDate:   from,
		ToDate:     to,
	}

	for i := range payments {
		response.Revenue.add(payments[i].TaxParts())
	}
	for i := range expenses {
		response.Expenses.add(expenses[i].TaxParts())
	}

	byCategory := utils.GroupBy(expenses,
		func(e models.Expense) string { return e.CategoryName() },
		func(e models.Expense) utils.TaxParts { return e.TaxParts() },
	)
	response.ExpensesByCategory = sortedGroupEntries(byCategory)

	response.GrossProfit = response.Revenue.Base.Sub(response.Expenses.Base)
	response.NetProfit = response.Revenue.Total.Sub(response.Expenses.Total)
	response.NetGstPayable = response.Revenue.Gst.Sub(response.Expenses.Gst)
	return response
}

func GetProfitAndLossReport(ctx context.Context, fromDate, toDate models.DateString) (*ProfitAndLossResponse, error) {
	from, err := fromDate.StartOfDayUTC()
	if err != nil {
		return nil, err
	}
	to, err := toDate.EndOfDayUTC()
	if err != nil {
		return nil, err
	}

	cacheKey := reportCacheKey(models.ReportTypeProfitLoss, string(fromDate), string(toDate))
	if reportCacheEnabled() {
		var cached ProfitAndLossResponse
		if ok, _ := cacheGet(cacheKey, &cached); ok {
			return &cached, nil
		}
	}

	payments, err := models.GetPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := models.GetExpensesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	response := BuildProfitAndLoss(payments, expenses, from, to)
	if reportCacheEnabled() {
		_ = cacheSet(cacheKey, response, reportCacheTTL())
	}
	return response, nil
}
