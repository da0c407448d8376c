package zoho

import (
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"github.com/shopspring/decimal"
)

type invoiceListResponse struct {
	Code        int              `json:"code"`
	Message     string           `json:"message"`
	Invoices    []invoicePayload `json:"invoices"`
	PageContext pageContext      `json:"page_context"`
}

type pageContext struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	HasMorePage bool `json:"has_more_page"`
}

type invoicePayload struct {
	InvoiceId      string          `json:"invoice_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Date           string          `json:"date"`
	CustomerName   string          `json:"customer_name"`
	Email          string          `json:"email"`
	Total          decimal.Decimal `json:"total"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	IsInclusiveTax bool            `json:"is_inclusive_tax"`
	Status         string          `json:"status"`
}

func (p *invoicePayload) toModel() (models.ZohoInvoice, error) {
	invoiceDate, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return models.ZohoInvoice{}, err
	}
	return models.ZohoInvoice{
		InvoiceId:      p.InvoiceId,
		InvoiceNumber:  p.InvoiceNumber,
		InvoiceDate:    invoiceDate,
		CustomerName:   p.CustomerName,
		CustomerEmail:  p.Email,
		Total:          p.Total,
		SubTotal:       p.SubTotal,
		TaxTotal:       p.TaxTotal,
		IsTaxInclusive: p.IsInclusiveTax,
		MonthKey:       models.MonthKey(invoiceDate),
		PaymentStatus:  p.Status,
	}, nil
}
