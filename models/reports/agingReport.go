package reports

import (
	"context"
	"math"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

type AgingEntry struct {
	LeaseId      int                `json:"lease_id"`
	CustomerName string             `json:"customer_name"`
	SpaceName    string             `json:"space_name"`
	BaseAmount   decimal.Decimal    `json:"base_amount"`
	GstAmount    decimal.Decimal    `json:"gst_amount"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	BaselineDate time.Time          `json:"baseline_date"`
	DaysOverdue  int                `json:"days_overdue"`
	Bucket       models.AgingBucket `json:"bucket"`
}

type AgingBucketSummary struct {
	Bucket models.AgingBucket `json:"bucket"`
	Total  decimal.Decimal    `json:"total"`
	Count  int                `json:"count"`
}

type AgingReportResponse struct {
	ReportType    models.ReportType    `json:"report_type"`
	AsOf          time.Time            `json:"as_of"`
	Entries       []AgingEntry         `json:"entries"`
	BucketSummary []AgingBucketSummary `json:"bucket_summary"`
}

// leaseAgedOut excludes virtual-office leases from receivables; they carry
// no physical occupancy to age.
func leaseAgedOut(l *models.Lease) bool {
	if l.Status != models.LeaseStatusActive {
		return true
	}
	return l.Space != nil && l.Space.Category == models.SpaceCategoryVirtualOffice
}

// leaseExpectedParts projects one month's charge for a lease. Tax is
// projected at the nominal rate on base; expected rent is forward-looking
// so there is no stored tax amount to trust.
func leaseExpectedParts(l *models.Lease) utils.TaxParts {
	base := l.ExpectedMonthlyCharge()
	tax := decimal.Zero
	if utils.DereferencePtr(l.IsTaxInclusive, false) {
		tax = utils.ProjectTaxOnBase(base)
	}
	return utils.TaxParts{Base: base, Tax: tax, Gross: base.Add(tax)}
}

// latestPaymentForDate finds the most recent covered period per lease.
func latestPaymentForDate(payments []models.Payment) map[int]time.Time {
	latest := make(map[int]time.Time)
	for i := range payments {
		if payments[i].LeaseId == nil {
			continue
		}
		leaseId := *payments[i].LeaseId
		if current, ok := latest[leaseId]; !ok || payments[i].PaymentForDate.After(current) {
			latest[leaseId] = payments[i].PaymentForDate
		}
	}
	return latest
}

// BuildAgingReport derives days overdue per active lease from its payment
// history: the baseline is the latest "for"-date, or the lease start when
// no payment exists at all.
func BuildAgingReport(leases []models.Lease, payments []models.Payment, now time.Time) *AgingReportResponse {
	response := &AgingReportResponse{
		ReportType: models.ReportTypeAgingReport,
		AsOf:       now,
	}

	latest := latestPaymentForDate(payments)
	bucketTotals := make(map[models.AgingBucket]*AgingBucketSummary)
	for _, bucket := range models.AgingBucketOrder {
		bucketTotals[bucket] = &AgingBucketSummary{Bucket: bucket, Total: decimal.Zero}
	}

	for i := range leases {
		lease := &leases[i]
		if leaseAgedOut(lease) {
			continue
		}

		baseline, ok := latest[lease.ID]
		if !ok {
			baseline = lease.StartDate
		}
		daysOverdue := int(math.Floor(now.Sub(baseline).Hours() / 24))
		bucket := models.AgingBucketForDays(daysOverdue)
		parts := leaseExpectedParts(lease)

		response.Entries = append(response.Entries, AgingEntry{
			LeaseId:      lease.ID,
			CustomerName: lease.CustomerDisplayName(),
			SpaceName:    lease.SpaceName(),
			BaseAmount:   parts.Base,
			GstAmount:    parts.Tax,
			TotalAmount:  parts.Gross,
			BaselineDate: baseline,
			DaysOverdue:  daysOverdue,
			Bucket:       bucket,
		})
		bucketTotals[bucket].Total = bucketTotals[bucket].Total.Add(parts.Gross)
		bucketTotals[bucket].Count++
	}

	for _, bucket := range models.AgingBucketOrder {
		response.BucketSummary = append(response.BucketSummary, *bucketTotals[bucket])
	}
	return response
}

func GetAgingReport(ctx context.Context) (*AgingReportResponse, error) {
	leases, err := models.GetActiveLeases(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := models.GetAllPayments(ctx)
	if err != nil {
		return nil, err
	}
	return BuildAgingReport(leases, payments, time.Now().UTC()), nil
}
