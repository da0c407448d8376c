package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"github.com/shopspring/decimal"
)

type ReceivableEntry struct {
	LeaseId      int             `json:"lease_id"`
	CustomerName string          `json:"customer_name"`
	SpaceName    string          `json:"space_name"`
	BaseAmount   decimal.Decimal `json:"base_amount"`
	GstAmount    decimal.Decimal `json:"gst_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

type AccountsReceivableResponse struct {
	ReportType      models.ReportType `json:"report_type"`
	AsOf            time.Time         `json:"as_of"`
	Entries         []ReceivableEntry `json:"entries"`
	TotalReceivable decimal.Decimal   `json:"total_receivable"`
}

// paidThisMonth reports whether any payment covers the lease for the
// calendar month of now. This is the strict binary pending test; aging's
// continuous overdue measure is a separate view (see BuildAgingReport).
func paidThisMonth(leaseId int, payments []models.Payment, now time.Time) bool {
	for i := range payments {
		if payments[i].LeaseId == nil || *payments[i].LeaseId != leaseId {
			continue
		}
		forDate := payments[i].PaymentForDate
		if forDate.Year() == now.Year() && forDate.Month() == now.Month() {
			return true
		}
	}
	return false
}

// BuildAccountsReceivable lists active non-virtual-office leases with no
// payment at all covering the current calendar month.
func BuildAccountsReceivable(leases []models.Lease, payments []models.Payment, now time.Time) *AccountsReceivableResponse {
	response := &AccountsReceivableResponse{
		ReportType:      models.ReportTypeAccountsReceivable,
		AsOf:            now,
		TotalReceivable: decimal.Zero,
	}

	for i := range leases {
		lease := &leases[i]
		if leaseAgedOut(lease) {
			continue
		}
		if paidThisMonth(lease.ID, payments, now) {
			continue
		}

		parts := leaseExpectedParts(lease)
		response.Entries = append(response.Entries, ReceivableEntry{
			LeaseId:      lease.ID,
			CustomerName: lease.CustomerDisplayName(),
			SpaceName:    lease.SpaceName(),
			BaseAmount:   parts.Base,
			GstAmount:    parts.Tax,
			TotalAmount:  parts.Gross,
		})
		response.TotalReceivable = response.TotalReceivable.Add(parts.Gross)
	}
	return response
}

func GetAccountsReceivableReport(ctx context.Context) (*AccountsReceivableResponse, error) {
	leases, err := models.GetActiveLeases(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := models.GetAllPayments(ctx)
	if err != nil {
		return nil, err
	}
	return BuildAccountsReceivable(leases, payments, time.Now().UTC()), nil
}
