package recon

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InvoiceSource yields the external invoice ledger for a period.
type InvoiceSource interface {
	ListInvoices(ctx context.Context, from, to time.Time) ([]models.ZohoInvoice, error)
}

type ReconciliationResponse struct {
	RunId   string                        `json:"run_id"`
	From    time.Time                     `json:"from"`
	To      time.Time                     `json:"to"`
	Summary models.ReconciliationSummary  `json:"summary"`
	Results []models.ReconciliationResult `json:"results"`
}

// Reconcile fetches both sides for the period and matches them. Either
// fetch failing aborts the run; no partial result is returned.
func Reconcile(ctx context.Context, source InvoiceSource, fromDate, toDate models.DateString) (*ReconciliationResponse, error) {
	runId := uuid.NewString()
	logger := config.GetLogger()

	from, err := fromDate.StartOfDayUTC()
	if err != nil {
		return nil, err
	}
	to, err := toDate.EndOfDayUTC()
	if err != nil {
		return nil, err
	}

	payments, err := models.GetPaymentsForBetween(ctx, from, to)
	if err != nil {
		config.LogError(logger, "recon", "Reconcile", "fetch payments", runId, err)
		return nil, err
	}
	invoices, err := source.ListInvoices(ctx, from, to)
	if err != nil {
		config.LogError(logger, "recon", "Reconcile", "fetch zoho invoices", runId, err)
		return nil, err
	}

	results := BuildResults(payments, invoices)
	summary := Summarize(results)
	logger.WithFields(logrus.Fields{
		"module":   "recon",
		"run_id":   runId,
		"payments": len(payments),
		"invoices": len(invoices),
		"matched":  summary.Matched,
	}).Info("reconciliation run complete")

	return &ReconciliationResponse{
		RunId:   runId,
		From:    from,
		To:      to,
		Summary: summary,
		Results: results,
	}, nil
}
