package reports_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/models/reports"
)

func TestBuildProfitAndLoss(t *testing.T) {
	payments := []models.Payment{inclusivePayment("1180", "180", "2024-03-05")}
	expenses := []models.Expense{exclusiveExpense("500", "Utilities", "2024-03-10")}

	report := reports.BuildProfitAndLoss(payments, expenses, day("2024-03-01"), day("2024-03-31"))

	if report.ReportType != models.ReportTypeProfitLoss {
		t.Errorf("report type = %q", report.ReportType)
	}
	if !report.Revenue.Base.Equal(dec("1000")) {
		t.Errorf("revenue base = %s, want 1000", report.Revenue.Base)
	}
	if !report.Revenue.Gst.Equal(dec("180")) {
		t.Errorf("revenue gst = %s, want 180", report.Revenue.Gst)
	}
	if !report.Expenses.Base.Equal(dec("500")) {
		t.Errorf("expense base = %s, want 500", report.Expenses.Base)
	}
	if !report.Expenses.Gst.IsZero() {
		t.Errorf("expense gst = %s, want 0", report.Expenses.Gst)
	}
	if !report.GrossProfit.Equal(dec("500")) {
		t.Errorf("gross profit = %s, want 500", report.GrossProfit)
	}
	if !report.NetProfit.Equal(dec("680")) {
		t.Errorf("net profit = %s, want 680", report.NetProfit)
	}
	if !report.NetGstPayable.Equal(dec("180")) {
		t.Errorf("net gst payable = %s, want 180", report.NetGstPayable)
	}
}

func TestBuildProfitAndLossCategoryTotalsMatchExpenseTotal(t *testing.T) {
	expenses := []models.Expense{
		exclusiveExpense("500", "Utilities", "2024-03-10"),
		exclusiveExpense("300", "Utilities", "2024-03-11"),
		exclusiveExpense("120", "Cleaning", "2024-03-12"),
		exclusiveExpense("80", "", "2024-03-13"),
	}
	report := reports.BuildProfitAndLoss(nil, expenses, day("2024-03-01"), day("2024-03-31"))

	var grouped = dec("0")
	for _, group := range report.ExpensesByCategory {
		grouped = grouped.Add(group.Total)
	}
	if !grouped.Equal(report.Expenses.Total) {
		t.Errorf("category totals %s != expense total %s", grouped, report.Expenses.Total)
	}

	// Uncategorized expenses land under the sentinel key, never error out.
	found := false
	for _, group := range report.ExpensesByCategory {
		if group.Key == "Uncategorized" {
			found = true
		}
	}
	if !found {
		t.Error("expected an Uncategorized group")
	}
}
