package reports_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/models/reports"
)

func TestBuildAgingReportBaselineFromLatestPayment(t *testing.T) {
	now := day("2024-06-15")
	leases := []models.Lease{
		leaseFor(1, "Asha Rao", "Cabin 1", models.SpaceCategoryCabin, "10000", false, "2024-01-01"),
	}
	payments := []models.Payment{
		leasePayment(1, "2024-03-01"),
		leasePayment(1, "2024-05-01"), // latest for-date wins
		leasePayment(1, "2024-04-01"),
	}

	report := reports.BuildAgingReport(leases, payments, now)
	if len(report.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(report.Entries))
	}
	entry := report.Entries[0]
	if !entry.BaselineDate.Equal(day("2024-05-01")) {
		t.Errorf("baseline = %s, want 2024-05-01", entry.BaselineDate)
	}
	if entry.DaysOverdue != 45 {
		t.Errorf("days overdue = %d, want 45", entry.DaysOverdue)
	}
	if entry.Bucket != models.AgingBucket31To60 {
		t.Errorf("bucket = %q, want 31-60 Days", entry.Bucket)
	}
}

func TestBuildAgingReportBaselineFallsBackToLeaseStart(t *testing.T) {
	now := day("2024-06-15")
	leases := []models.Lease{
		leaseFor(2, "Budget Co", "Desk 4", models.SpaceCategoryDesk, "", false, "2024-06-01"),
	}

	report := reports.BuildAgingReport(leases, nil, now)
	if len(report.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(report.Entries))
	}
	entry := report.Entries[0]
	if !entry.BaselineDate.Equal(day("2024-06-01")) {
		t.Errorf("baseline = %s, want lease start", entry.BaselineDate)
	}
	// No monthly price on the lease: falls back to the space's daily price.
	if !entry.BaseAmount.Equal(dec("500")) {
		t.Errorf("base = %s, want 500", entry.BaseAmount)
	}
	if entry.Bucket != models.AgingBucket1To30 {
		t.Errorf("bucket = %q", entry.Bucket)
	}
}

func TestBuildAgingReportExcludesVirtualOffice(t *testing.T) {
	leases := []models.Lease{
		leaseFor(3, "Ghost LLC", "VO 1", models.SpaceCategoryVirtualOffice, "2000", false, "2023-01-01"),
	}
	report := reports.BuildAgingReport(leases, nil, day("2024-06-15"))
	if len(report.Entries) != 0 {
		t.Fatalf("virtual office lease must not age, got %d entries", len(report.Entries))
	}
}

func TestBuildAgingReportProjectsTaxOnInclusiveLease(t *testing.T) {
	leases := []models.Lease{
		leaseFor(4, "Tax Inc", "Cabin 2", models.SpaceCategoryCabin, "1000", true, "2024-01-01"),
	}
	report := reports.BuildAgingReport(leases, nil, day("2024-06-15"))
	entry := report.Entries[0]
	if !entry.GstAmount.Equal(dec("180")) {
		t.Errorf("projected gst = %s, want 180", entry.GstAmount)
	}
	if !entry.TotalAmount.Equal(dec("1180")) {
		t.Errorf("total = %s, want 1180", entry.TotalAmount)
	}
}

func TestBuildAgingReportBucketSummarySumsEntries(t *testing.T) {
	now := day("2024-06-15")
	leases := []models.Lease{
		leaseFor(5, "A", "S1", models.SpaceCategoryCabin, "100", false, "2024-01-01"),
		leaseFor(6, "B", "S2", models.SpaceCategoryCabin, "200", false, "2024-01-01"),
		leaseFor(7, "C", "S3", models.SpaceCategoryDesk, "400", false, "2024-06-14"),
	}

	report := reports.BuildAgingReport(leases, nil, now)
	summaryTotal := dec("0")
	var counted int
	for _, summary := range report.BucketSummary {
		summaryTotal = summaryTotal.Add(summary.Total)
		counted += summary.Count
	}
	entryTotal := dec("0")
	for _, entry := range report.Entries {
		entryTotal = entryTotal.Add(entry.TotalAmount)
	}
	if !summaryTotal.Equal(entryTotal) {
		t.Errorf("summary total %s != entry total %s", summaryTotal, entryTotal)
	}
	if counted != len(report.Entries) {
		t.Errorf("summary count %d != %d entries", counted, len(report.Entries))
	}
	if len(report.BucketSummary) != len(models.AgingBucketOrder) {
		t.Errorf("summary should cover every bucket, got %d", len(report.BucketSummary))
	}
}
