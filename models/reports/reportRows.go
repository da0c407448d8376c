package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowsProvider is the contract handed to CSV/Excel export collaborators:
// ordered rows of cells, first row the header, column order fixed per
// report type.
type RowsProvider interface {
	Rows() [][]string
}

func cell(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func dateCell(t time.Time) string {
	return t.Format("2006-01-02")
}

func (r *ProfitAndLossResponse) Rows() [][]string {
	rows := [][]string{
		{"Line", "Base", "GST", "Total"},
		{"Revenue", cell(r.Revenue.Base), cell(r.Revenue.Gst), cell(r.Revenue.Total)},
		{"Expenses", cell(r.Expenses.Base), cell(r.Expenses.Gst), cell(r.Expenses.Total)},
	}
	for _, group := range r.ExpensesByCategory {
		rows = append(rows, []string{"Expense: " + group.Key, cell(group.Base), cell(group.Gst), cell(group.Total)})
	}
	rows = append(rows,
		[]string{"Gross Profit", cell(r.GrossProfit), "", ""},
		[]string{"Net Profit", cell(r.NetProfit), "", ""},
		[]string{"Net GST Payable", "", cell(r.NetGstPayable), ""},
	)
	return rows
}

func (r *BalanceSheetResponse) Rows() [][]string {
	rows := [][]string{{"Section", "Line", "Amount"}}
	for _, section := range []BalanceSheetSection{r.Assets, r.Liabilities, r.Equity} {
		for _, item := range section.Items {
			rows = append(rows, []string{section.Label, item.Name, cell(item.Amount)})
		}
		rows = append(rows, []string{section.Label, "Total", cell(section.Total)})
	}
	return rows
}

func (r *CashFlowResponse) Rows() [][]string {
	rows := [][]string{{"Date", "Description", "Destination", "Kind", "Amount"}}
	for _, txn := range r.Transactions {
		rows = append(rows, []string{dateCell(txn.Date), txn.Description, txn.Destination, txn.Kind, cell(txn.Amount)})
	}
	rows = append(rows,
		[]string{"", "Total Inflow", "", "", cell(r.TotalInflow)},
		[]string{"", "Total Outflow", "", "", cell(r.TotalOutflow)},
		[]string{"", "Net Cash Flow", "", "", cell(r.NetCashFlow)},
	)
	return rows
}

func (r *AccountsReceivableResponse) Rows() [][]string {
	rows := [][]string{{"Customer", "Space", "Base", "GST", "Total"}}
	for _, entry := range r.Entries {
		rows = append(rows, []string{entry.CustomerName, entry.SpaceName, cell(entry.BaseAmount), cell(entry.GstAmount), cell(entry.TotalAmount)})
	}
	rows = append(rows, []string{"Total Receivable", "", "", "", cell(r.TotalReceivable)})
	return rows
}

func (r *TaxReportResponse) Rows() [][]string {
	rows := [][]string{
		{"Line", "Amount"},
		{"GST Collected", cell(r.GstCollected)},
		{"GST Paid", cell(r.GstPaid)},
		{"GST Payable", cell(r.GstPayable)},
	}
	for _, month := range r.MonthlyCollected {
		rows = append(rows, []string{"Collected " + month.MonthKey, cell(month.Collected)})
	}
	return rows
}

func (r *AgingReportResponse) Rows() [][]string {
	rows := [][]string{{"Customer", "Space", "Total", "Baseline", "Days Overdue", "Bucket"}}
	for _, entry := range r.Entries {
		rows = append(rows, []string{
			entry.CustomerName,
			entry.SpaceName,
			cell(entry.TotalAmount),
			dateCell(entry.BaselineDate),
			decimal.NewFromInt(int64(entry.DaysOverdue)).String(),
			string(entry.Bucket),
		})
	}
	for _, summary := range r.BucketSummary {
		rows = append(rows, []string{"Bucket: " + string(summary.Bucket), "", cell(summary.Total), "", "", ""})
	}
	return rows
}

func groupRows(header string, groups []GroupEntry, totals TotalsBreakdown) [][]string {
	rows := [][]string{{header, "Base", "GST", "Total", "Count"}}
	for _, group := range groups {
		rows = append(rows, []string{group.Key, cell(group.Base), cell(group.Gst), cell(group.Total), decimal.NewFromInt(int64(group.Count)).String()})
	}
	rows = append(rows, []string{"Total", cell(totals.Base), cell(totals.Gst), cell(totals.Total), ""})
	return rows
}

func (r *RevenueByCustomerResponse) Rows() [][]string {
	return groupRows("Customer", r.Groups, r.Totals)
}

func (r *RevenueBySpaceResponse) Rows() [][]string {
	return groupRows("Space", r.Groups, r.Totals)
}

func (r *ExpenseReportResponse) Rows() [][]string {
	rows := [][]string{{"Date", "Category", "Destination", "Base", "GST", "Total"}}
	for i := range r.Expenses {
		parts := r.Expenses[i].TaxParts()
		rows = append(rows, []string{
			dateCell(r.Expenses[i].ExpenseDate),
			r.Expenses[i].CategoryName(),
			r.Expenses[i].Destination,
			cell(parts.Base),
			cell(parts.Tax),
			cell(parts.Gross),
		})
	}
	rows = append(rows, []string{"", "Total", "", cell(r.Totals.Base), cell(r.Totals.Gst), cell(r.Totals.Total)})
	return rows
}
