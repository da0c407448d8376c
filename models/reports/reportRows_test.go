package reports_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/models/reports"
)

func TestProfitAndLossRowsShape(t *testing.T) {
	payments := []models.Payment{inclusivePayment("1180", "180", "2024-03-05")}
	expenses := []models.Expense{exclusiveExpense("500", "Utilities", "2024-03-10")}
	report := reports.BuildProfitAndLoss(payments, expenses, day("2024-03-01"), day("2024-03-31"))

	rows := report.Rows()
	if len(rows) < 6 {
		t.Fatalf("expected at least 6 rows, got %d", len(rows))
	}
	header := rows[0]
	want := []string{"Line", "Base", "GST", "Total"}
	for i := range want {
		if header[i] != want[i] {
			t.Fatalf("header = %v, want %v", header, want)
		}
	}
	if rows[1][0] != "Revenue" || rows[1][3] != "1180.00" {
		t.Errorf("revenue row = %v", rows[1])
	}
	for i, row := range rows {
		if len(row) != len(header) {
			t.Errorf("row %d has %d cells, header has %d", i, len(row), len(header))
		}
	}
}

func TestCashFlowRowsAreDateOrdered(t *testing.T) {
	payments := []models.Payment{inclusivePayment("1000", "0", "2024-03-20")}
	expenses := []models.Expense{exclusiveExpense("300", "Repairs", "2024-03-05")}
	report := reports.BuildCashFlow(payments, expenses, day("2024-03-01"), day("2024-03-31"))

	rows := report.Rows()
	// header + 2 transactions + 3 total lines
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if rows[1][0] != "2024-03-05" || rows[2][0] != "2024-03-20" {
		t.Errorf("transaction rows out of date order: %v / %v", rows[1], rows[2])
	}
	if rows[1][4] != "-300.00" {
		t.Errorf("outflow cell = %q, want -300.00", rows[1][4])
	}
}

func TestAgingRowsCoverEntriesAndBuckets(t *testing.T) {
	leases := []models.Lease{
		leaseFor(1, "Asha Rao", "Cabin 1", models.SpaceCategoryCabin, "1000", false, "2024-05-01"),
	}
	report := reports.BuildAgingReport(leases, nil, day("2024-06-15"))

	rows := report.Rows()
	if len(rows) != 1+1+len(models.AgingBucketOrder) {
		t.Fatalf("expected header + entry + bucket rows, got %d", len(rows))
	}
	if rows[1][0] != "Asha Rao" || rows[1][4] != "45" {
		t.Errorf("entry row = %v", rows[1])
	}
}
