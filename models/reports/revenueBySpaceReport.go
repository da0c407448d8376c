package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
)

type RevenueBySpaceResponse struct {
	ReportType models.ReportType `json:"report_type"`
	FromDate   time.Time         `json:"from_date"`
	ToDate     time.Time         `json:"to_date"`
	Groups     []GroupEntry      `json:"groups"`
	Totals     TotalsBreakdown   `json:"totals"`
}

// BuildRevenueBySpace groups payment revenue by the space reached through
// the payment's lease; lease-less payments land under "Unassigned".
func BuildRevenueBySpace(payments []models.Payment, from, to time.Time) *RevenueBySpaceResponse {
	response := &RevenueBySpaceResponse{
		ReportType: models.ReportTypeRevenueBySpace,
		FromDate:   from,
		ToDate:     to,
	}

	groups := utils.GroupBy(payments,
		func(p models.Payment) string { return p.SpaceName() },
		func(p models.Payment) utils.TaxParts { return p.TaxParts() },
	)
	response.Groups = sortedGroupEntries(groups)

	sum := utils.SumGroups(groups)
	response.Totals = TotalsBreakdown{Base: sum.Base, Gst: sum.Tax, Total: sum.Total}
	return response
}

func GetRevenueBySpaceReport(ctx context.Context, fromDate, toDate models.DateString) (*RevenueBySpaceResponse, error) {
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
	return BuildRevenueBySpace(payments, from, to), nil
}
