package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ZohoInvoice is a read-only snapshot of an externally sourced invoice.
// The invoice ledger lives in Zoho Books; this backend only reads it for
// reconciliation against internally recorded payments.
type ZohoInvoice struct {
	InvoiceId      string          `json:"invoice_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	InvoiceDate    time.Time       `json:"invoice_date"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	Total          decimal.Decimal `json:"total"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	IsTaxInclusive bool            `json:"is_tax_inclusive"`
	MonthKey       string          `json:"month_key"`
	PaymentStatus  string          `json:"payment_status"`
}
