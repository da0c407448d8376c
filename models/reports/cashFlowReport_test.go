package reports_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/models/reports"
)

func TestBuildCashFlowTotalsAndGrouping(t *testing.T) {
	payments := []models.Payment{
		inclusivePayment("11800", "1800", "2024-03-05"),
		inclusivePayment("5900", "900", "2024-03-20"),
	}
	payments[0].Destination = "HDFC Current"
	payments[1].Destination = "" // unassigned
	expenses := []models.Expense{
		exclusiveExpense("2000", "Utilities", "2024-03-10"),
	}
	expenses[0].Destination = "HDFC Current"

	report := reports.BuildCashFlow(payments, expenses, day("2024-03-01"), day("2024-03-31"))
	if !report.TotalInflow.Equal(dec("17700")) {
		t.Errorf("total inflow = %s, want 17700", report.TotalInflow)
	}
	if !report.TotalOutflow.Equal(dec("2000")) {
		t.Errorf("total outflow = %s, want 2000", report.TotalOutflow)
	}
	if !report.NetCashFlow.Equal(dec("15700")) {
		t.Errorf("net cash flow = %s, want 15700", report.NetCashFlow)
	}

	var sawUnassigned bool
	for _, group := range report.Inflows {
		if group.Key == "Unassigned" {
			sawUnassigned = true
			if !group.Total.Equal(dec("5900")) {
				t.Errorf("unassigned inflow = %s, want 5900", group.Total)
			}
		}
	}
	if !sawUnassigned {
		t.Error("blank destination should group under Unassigned")
	}
}

func TestBuildCashFlowTransactionsSortedWithNegatedOutflows(t *testing.T) {
	payments := []models.Payment{
		inclusivePayment("1000", "0", "2024-03-20"),
	}
	expenses := []models.Expense{
		exclusiveExpense("300", "Repairs", "2024-03-05"),
		exclusiveExpense("200", "Repairs", "2024-03-25"),
	}

	report := reports.BuildCashFlow(payments, expenses, day("2024-03-01"), day("2024-03-31"))
	if len(report.Transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(report.Transactions))
	}
	for i := 1; i < len(report.Transactions); i++ {
		if report.Transactions[i].Date.Before(report.Transactions[i-1].Date) {
			t.Fatalf("transactions out of order at index %d", i)
		}
	}
	first := report.Transactions[0]
	if first.Kind != "outflow" || !first.Amount.Equal(dec("-300")) {
		t.Errorf("first transaction = %s %s, want outflow -300", first.Kind, first.Amount)
	}
	// Display negation must not leak back into totals.
	if !report.TotalOutflow.Equal(dec("500")) {
		t.Errorf("total outflow = %s, want 500", report.TotalOutflow)
	}
}
