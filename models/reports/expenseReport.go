package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
)

type ExpenseReportResponse struct {
	ReportType models.ReportType `json:"report_type"`
	FromDate   time.Time         `json:"from_date"`
	ToDate     time.Time         `json:"to_date"`
	Expenses   []models.Expense  `json:"expenses"`
	ByCategory []GroupEntry      `json:"by_category"`
	Totals     TotalsBreakdown   `json:"totals"`
}

// BuildExpenseReport carries the raw expense list for the range alongside
// its category grouping.
func BuildExpenseReport(expenses []models.Expense, from, to time.Time) *ExpenseReportResponse {
	response := &ExpenseReportResponse{
		ReportType: models.ReportTypeExpenseReport,
		FromDate:   from,
		ToDate:     to,
		Expenses:   expenses,
	}

	groups := utils.GroupBy(expenses,
		func(e models.Expense) string { return e.CategoryName() },
		func(e models.Expense) utils.TaxParts { return e.TaxParts() },
	)
	response.ByCategory = sortedGroupEntries(groups)

	sum := utils.SumGroups(groups)
	response.Totals = TotalsBreakdown{Base: sum.Base, Gst: sum.Tax, Total: sum.Total}
	return response
}

func GetExpenseReport(ctx context.Context, fromDate, toDate models.DateString) (*ExpenseReportResponse, error) {
	from, err := fromDate.StartOfDayUTC()
	if err != nil {
		return nil, err
	}
	to, err := toDate.EndOfDayUTC()
	if err != nil {
		return nil, err
	}

	expenses, err := models.GetExpensesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BuildExpenseReport(expenses, from, to), nil
}
