package reports_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/models/reports"
)

func TestBuildRevenueByCustomerGroupsAndSorts(t *testing.T) {
	payments := []models.Payment{
		inclusivePayment("11800", "1800", "2024-03-05"),
		inclusivePayment("5900", "900", "2024-03-12"),
		inclusivePayment("5900", "900", "2024-03-20"),
	}
	payments[0].Customer = &models.Customer{Name: "Beta Traders"}
	payments[1].Customer = &models.Customer{FirstName: "Asha", LastName: "Rao"}
	payments[2].Customer = &models.Customer{FirstName: "Asha", LastName: "Rao"}

	report := reports.BuildRevenueByCustomer(payments, day("2024-03-01"), day("2024-03-31"))
	if len(report.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(report.Groups))
	}
	// Both customers land on an equal 11800 total; the key breaks the tie.
	if report.Groups[0].Key != "Asha Rao" {
		t.Errorf("first group = %q, want Asha Rao", report.Groups[0].Key)
	}
	if report.Groups[0].Count != 2 {
		t.Errorf("Asha Rao count = %d, want 2", report.Groups[0].Count)
	}
	if !report.Totals.Total.Equal(dec("23600")) {
		t.Errorf("totals = %s, want 23600", report.Totals.Total)
	}
	if !report.Totals.Gst.Equal(dec("3600")) {
		t.Errorf("gst = %s, want 3600", report.Totals.Gst)
	}
}

func TestBuildRevenueByCustomerUnknownSentinel(t *testing.T) {
	payments := []models.Payment{
		inclusivePayment("1000", "0", "2024-03-05"), // no customer attached
	}
	report := reports.BuildRevenueByCustomer(payments, day("2024-03-01"), day("2024-03-31"))
	if len(report.Groups) != 1 || report.Groups[0].Key != "Unknown" {
		t.Fatalf("customer-less payment should group under Unknown, got %+v", report.Groups)
	}
}

func TestBuildRevenueBySpaceUnassignedSentinel(t *testing.T) {
	withLease := inclusivePayment("2000", "0", "2024-03-05")
	leaseId := 7
	withLease.LeaseId = &leaseId
	withLease.Lease = &models.Lease{
		ID:    leaseId,
		Space: &models.Space{Name: "Cabin 1", Category: models.SpaceCategoryCabin},
	}
	orphan := inclusivePayment("500", "0", "2024-03-06")

	report := reports.BuildRevenueBySpace([]models.Payment{withLease, orphan}, day("2024-03-01"), day("2024-03-31"))
	byKey := make(map[string]bool)
	for _, group := range report.Groups {
		byKey[group.Key] = true
	}
	if !byKey["Cabin 1"] || !byKey["Unassigned"] {
		t.Fatalf("want groups Cabin 1 and Unassigned, got %+v", report.Groups)
	}
	if !report.Totals.Total.Equal(dec("2500")) {
		t.Errorf("totals = %s, want 2500", report.Totals.Total)
	}
}

// Group totals must always reconcile back to the ungrouped sum, whatever
// the grouping key.
func TestRevenueGroupTotalsMatchUngrouped(t *testing.T) {
	payments := []models.Payment{
		inclusivePayment("11800", "1800", "2024-03-01"),
		inclusivePayment("4720", "720", "2024-03-02"),
		inclusivePayment("999.99", "0", "2024-03-03"),
	}
	payments[0].Customer = &models.Customer{Name: "A"}
	payments[1].Customer = &models.Customer{Name: "B"}

	report := reports.BuildRevenueByCustomer(payments, day("2024-03-01"), day("2024-03-31"))
	groupSum := dec("0")
	for _, group := range report.Groups {
		groupSum = groupSum.Add(group.Total)
	}
	if !groupSum.Equal(report.Totals.Total) {
		t.Errorf("group sum %s != totals %s", groupSum, report.Totals.Total)
	}
	if !report.Totals.Total.Equal(dec("17519.99")) {
		t.Errorf("totals = %s, want 17519.99", report.Totals.Total)
	}
}
