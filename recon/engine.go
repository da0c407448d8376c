package recon

import (
	"sort"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
)

// UnknownCustomerKey collects records with no usable identity; the matcher
// never fails on a missing email or name.
const UnknownCustomerKey = "unknown"

type pairing struct {
	payment    *models.Payment
	invoice    *models.ZohoInvoice
	internal   utils.TaxParts
	external   utils.TaxParts
	hasPayment bool
	hasInvoice bool
}

func paymentCustomerKey(p *models.Payment) string {
	if p.Customer != nil && p.Customer.Email != nil {
		if email := utils.NormalizeEmail(*p.Customer.Email); email != "" {
			return email
		}
	}
	if name := utils.NormalizeKey(p.Customer.DisplayName()); name != "" {
		return name
	}
	return UnknownCustomerKey
}

func invoiceCustomerKey(inv *models.ZohoInvoice) string {
	if email := utils.NormalizeEmail(inv.CustomerEmail); email != "" {
		return email
	}
	if name := utils.NormalizeKey(inv.CustomerName); name != "" {
		return name
	}
	return UnknownCustomerKey
}

func invoiceMonthKey(inv *models.ZohoInvoice) string {
	if inv.MonthKey != "" {
		return inv.MonthKey
	}
	return models.MonthKey(inv.InvoiceDate)
}

// BuildResults pairs internal payments with external invoices per
// (customer key, month key) and classifies each pairing. Amounts on the
// same side of the same key accumulate, so a month with two part-payments
// compares its sum against the invoice. Comparison is exact; a single-cent
// difference is a mismatch.
func BuildResults(payments []models.Payment, invoices []models.ZohoInvoice) []models.ReconciliationResult {
	pairings := make(map[string]*pairing)
	keyOf := func(customerKey, monthKey string) string {
		return customerKey + "|" + monthKey
	}

	for i := range payments {
		payment := &payments[i]
		customerKey := paymentCustomerKey(payment)
		monthKey := models.MonthKey(payment.PaymentForDate)
		key := keyOf(customerKey, monthKey)
		pair, ok := pairings[key]
		if !ok {
			pair = &pairing{}
			pairings[key] = pair
		}
		if pair.payment == nil {
			pair.payment = payment
		}
		parts := payment.TaxParts()
		pair.internal.Base = pair.internal.Base.Add(parts.Base)
		pair.internal.Tax = pair.internal.Tax.Add(parts.Tax)
		pair.internal.Gross = pair.internal.Gross.Add(parts.Gross)
		pair.hasPayment = true
	}

	for i := range invoices {
		invoice := &invoices[i]
		key := keyOf(invoiceCustomerKey(invoice), invoiceMonthKey(invoice))
		pair, ok := pairings[key]
		if !ok {
			pair = &pairing{}
			pairings[key] = pair
		}
		if pair.invoice == nil {
			pair.invoice = invoice
		}
		pair.external.Base = pair.external.Base.Add(invoice.SubTotal)
		pair.external.Tax = pair.external.Tax.Add(invoice.TaxTotal)
		pair.external.Gross = pair.external.Gross.Add(invoice.Total)
		pair.hasInvoice = true
	}

	results := make([]models.ReconciliationResult, 0, len(pairings))
	for key, pair := range pairings {
		customerKey, monthKey := splitKey(key)
		result := models.ReconciliationResult{
			CustomerKey:    customerKey,
			MonthKey:       monthKey,
			Payment:        pair.payment,
			Invoice:        pair.invoice,
			InternalAmount: pair.internal.Gross,
			InternalBase:   pair.internal.Base,
			InternalGst:    pair.internal.Tax,
			ZohoAmount:     pair.external.Gross,
			ZohoBase:       pair.external.Base,
			ZohoGst:        pair.external.Tax,
		}
		// Internal minus external; an absent side contributes zero, so a
		// one-sided pairing's difference is the present side's full value.
		result.AmountDifference = pair.internal.Gross.Sub(pair.external.Gross)
		result.BaseDifference = pair.internal.Base.Sub(pair.external.Base)
		result.GstDifference = pair.internal.Tax.Sub(pair.external.Tax)

		switch {
		case pair.hasPayment && pair.hasInvoice:
			if pair.internal.Gross.Equal(pair.external.Gross) {
				result.Status = models.ReconStatusMatch
			} else {
				result.Status = models.ReconStatusMismatch
			}
		case pair.hasPayment:
			result.Status = models.ReconStatusInternalOnly
		default:
			result.Status = models.ReconStatusZohoOnly
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].CustomerKey != results[j].CustomerKey {
			return results[i].CustomerKey < results[j].CustomerKey
		}
		return results[i].MonthKey < results[j].MonthKey
	})
	return results
}

func splitKey(key string) (string, string) {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '|' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

// Summarize counts results per status.
func Summarize(results []models.ReconciliationResult) models.ReconciliationSummary {
	summary := models.ReconciliationSummary{Total: len(results)}
	for i := range results {
		switch results[i].Status {
		case models.ReconStatusMatch:
			summary.Matched++
		case models.ReconStatusMismatch:
			summary.Mismatched++
		case models.ReconStatusInternalOnly:
			summary.InternalOnly++
		case models.ReconStatusZohoOnly:
			summary.ZohoOnly++
		}
	}
	return summary
}
