package reports

import (
	"context"
	"sort"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

type CashFlowTransaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Destination string          `json:"destination"`
	// Amount is negated for outflows for display; the stored record keeps
	// its positive sign.
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind"`
}

type CashFlowResponse struct {
	ReportType   models.ReportType     `json:"report_type"`
	FromDate     time.Time             `json:"from_date"`
	ToDate       time.Time             `json:"to_date"`
	Inflows      []GroupEntry          `json:"inflows"`
	Outflows     []GroupEntry          `json:"outflows"`
	TotalInflow  decimal.Decimal       `json:"total_inflow"`
	TotalOutflow decimal.Decimal       `json:"total_outflow"`
	NetCashFlow  decimal.Decimal       `json:"net_cash_flow"`
	Transactions []CashFlowTransaction `json:"transactions"`
}

func destinationKey(destination string) string {
	if destination == "" {
		return "Unassigned"
	}
	return destination
}

// BuildCashFlow groups inflows (payments) and outflows (expenses) by
// destination and merges both into one date-sorted transaction list.
func BuildCashFlow(payments []models.Payment, expenses []models.Expense, from, to time.Time) *CashFlowResponse {
	response := &CashFlowResponse{
		ReportType: models.ReportTypeCashFlow,
		FromDate:   from,
		ToDate:     to,
	}

	inflows := utils.GroupBy(payments,
		func(p models.Payment) string { return destinationKey(p.Destination) },
		func(p models.Payment) utils.TaxParts { return p.TaxParts() },
	)
	outflows := utils.GroupBy(expenses,
		func(e models.Expense) string { return destinationKey(e.Destination) },
		func(e models.Expense) utils.TaxParts { return e.TaxParts() },
	)
	response.Inflows = sortedGroupEntries(inflows)
	response.Outflows = sortedGroupEntries(outflows)
	response.TotalInflow = utils.SumGroups(inflows).Total
	response.TotalOutflow = utils.SumGroups(outflows).Total
	response.NetCashFlow = response.TotalInflow.Sub(response.TotalOutflow)

	transactions := make([]CashFlowTransaction, 0, len(payments)+len(expenses))
	for i := range payments {
		transactions = append(transactions, CashFlowTransaction{
			Date:        payments[i].PaymentDate,
			Description: payments[i].CustomerDisplayName(),
			Destination: destinationKey(payments[i].Destination),
			Amount:      payments[i].Amount,
			Kind:        "inflow",
		})
	}
	for i := range expenses {
		transactions = append(transactions, CashFlowTransaction{
			Date:        expenses[i].ExpenseDate,
			Description: expenses[i].CategoryName(),
			Destination: destinationKey(expenses[i].Destination),
			Amount:      expenses[i].Amount.Neg(),
			Kind:        "outflow",
		})
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
	response.Transactions = transactions
	return response
}

func GetCashFlowReport(ctx context.Context, fromDate, toDate models.DateString) (*CashFlowResponse, error) {
	from, err := fromDate.StartOfDayUTC()
	if err != nil {
		return nil, err
	}
	to, err := toDate.EndOfDayUTC()
	if err != nil {
		return nil, err
	}

	payments, err := models.GetPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := models.GetExpensesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BuildCashFlow(payments, expenses, from, to), nil
}
