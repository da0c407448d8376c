package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
)

type RevenueByCustomerResponse struct {
	ReportType models.ReportType `json:"report_type"`
	FromDate   time.Time         `json:"from_date"`
	ToDate     time.Time         `json:"to_date"`
	Groups     []GroupEntry      `json:"groups"`
	Totals     TotalsBreakdown   `json:"totals"`
}

// BuildRevenueByCustomer groups payment revenue by customer display name;
// payments whose customer cannot be resolved land under "Unknown".
func BuildRevenueByCustomer(payments []models.Payment, from, to time.Time) *RevenueByCustomerResponse {
	response := &RevenueByCustomerResponse{
		ReportType: models.ReportTypeRevenueByCustomer,
		FromDate:   from,
		ToDate:     to,
	}

	groups := utils.GroupBy(payments,
		func(p models.Payment) string { return p.CustomerDisplayName() },
		func(p models.Payment) utils.TaxParts { return p.TaxParts() },
	)
	response.Groups = sortedGroupEntries(groups)

	sum := utils.SumGroups(groups)
	response.Totals = TotalsBreakdown{Base: sum.Base, Gst: sum.Tax, Total: sum.Total}
	return response
}

func GetRevenueByCustomerReport(ctx context.Context, fromDate, toDate models.DateString) (*RevenueByCustomerResponse, error) {
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
	return BuildRevenueByCustomer(payments, from, to), nil
}
