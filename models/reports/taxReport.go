package reports

import (
	"context"
	"sort"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"github.com/shopspring/decimal"
)

type MonthlyGst struct {
	MonthKey  string          `json:"month_key"`
	Collected decimal.Decimal `json:"collected"`
}

type TaxReportResponse struct {
	ReportType       models.ReportType `json:"report_type"`
	FromDate         time.Time         `json:"from_date"`
	ToDate           time.Time         `json:"to_date"`
	GstCollected     decimal.Decimal   `json:"gst_collected"`
	GstPaid          decimal.Decimal   `json:"gst_paid"`
	GstPayable       decimal.Decimal   `json:"gst_payable"`
	MonthlyCollected []MonthlyGst      `json:"monthly_collected"`
}

// BuildTaxReport nets GST collected on payments against GST paid on
// expenses. The monthly breakdown keys off the payment date, the month the
// tax was actually collected.
func BuildTaxReport(payments []models.Payment, expenses []models.Expense, from, to time.Time) *TaxReportResponse {
	response := &TaxReportResponse{
		ReportType: models.ReportTypeTaxReport,
		FromDate:   from,
		ToDate:     to,
	}

	byMonth := make(map[string]decimal.Decimal)
	for i := range payments {
		tax := payments[i].TaxParts().Tax
		response.GstCollected = response.GstCollected.Add(tax)
		key := models.MonthKey(payments[i].PaymentDate)
		byMonth[key] = byMonth[key].Add(tax)
	}
	for i := range expenses {
		response.GstPaid = response.GstPaid.Add(expenses[i].TaxParts().Tax)
	}
	response.GstPayable = response.GstCollected.Sub(response.GstPaid)

	months := make([]string, 0, len(byMonth))
	for key := range byMonth {
		months = append(months, key)
	}
	sort.Strings(months)
	for _, key := range months {
		response.MonthlyCollected = append(response.MonthlyCollected, MonthlyGst{
			MonthKey:  key,
			Collected: byMonth[key],
		})
	}
	return response
}

func GetTaxReport(ctx context.Context, fromDate, toDate models.DateString) (*TaxReportResponse, error) {
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
	expenses, err := models.GetExpensesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BuildTaxReport(payments, expenses, from, to), nil
}
