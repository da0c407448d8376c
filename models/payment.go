package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID             int             `gorm:"primary_key" json:"id"`
	LeaseId        *int            `gorm:"index" json:"lease_id"`
	Lease          *Lease          `gorm:"foreignKey:LeaseId" json:"lease,omitempty"`
	CustomerId     int             `gorm:"index;not null" json:"customer_id" binding:"required"`
	Customer       *Customer       `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	PaymentDate    time.Time       `gorm:"index;not null" json:"payment_date" binding:"required"`
	PaymentForDate time.Time       `gorm:"index;not null" json:"payment_for_date" binding:"required"`
	IsTaxInclusive *bool           `gorm:"not null;default:false" json:"is_tax_inclusive"`
	GstAmount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gst_amount"`
	Destination    string          `gorm:"size:255" json:"destination"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPayment struct {
	LeaseId        *int            `json:"lease_id"`
	CustomerId     int             `json:"customer_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"payment_date" binding:"required"`
	PaymentForDate time.Time       `json:"payment_for_date" binding:"required"`
	IsTaxInclusive *bool           `json:"is_tax_inclusive"`
	GstAmount      decimal.Decimal `json:"gst_amount"`
	Destination    string          `json:"destination"`
	Notes          string          `json:"notes"`
}

// TaxParts decomposes the recorded gross amount. Historical rows always
// trust the stored GST amount.
func (p *Payment) TaxParts() utils.TaxParts {
	return utils.DecomposeTax(p.Amount, utils.DereferencePtr(p.IsTaxInclusive, false), p.GstAmount)
}

// CustomerDisplayName absorbs an unresolvable customer with a sentinel.
func (p *Payment) CustomerDisplayName() string {
	if name := p.Customer.DisplayName(); name != "" {
		return name
	}
	return "Unknown"
}

// SpaceName resolves the space through the payment's lease, with a sentinel
// for lease-less or space-less payments.
func (p *Payment) SpaceName() string {
	if p.Lease != nil {
		return p.Lease.SpaceName()
	}
	return "Unassigned"
}

func CreatePayment(ctx context.Context, input NewPayment) (*Payment, error) {
	inclusive := utils.DereferencePtr(input.IsTaxInclusive, false)
	if inclusive {
		if input.GstAmount.IsNegative() || input.GstAmount.GreaterThan(input.Amount) {
			return nil, errors.New("gst amount must be between zero and amount")
		}
	}
	payment := Payment{
		LeaseId:        input.LeaseId,
		CustomerId:     input.CustomerId,
		Amount:         input.Amount,
		PaymentDate:    input.PaymentDate,
		PaymentForDate: input.PaymentForDate,
		IsTaxInclusive: input.IsTaxInclusive,
		GstAmount:      input.GstAmount,
		Destination:    input.Destination,
		Notes:          input.Notes,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPaymentsBetween returns payments whose payment date falls inside the
// inclusive range, joined with customer and lease/space.
func GetPaymentsBetween(ctx context.Context, from, to time.Time) ([]Payment, error) {
	var payments []Payment
	db := config.GetDB()
	err := db.WithContext(ctx).
		Preload("Customer").
		Preload("Lease").
		Preload("Lease.Space").
		Where("payment_date >= ? AND payment_date <= ?", from, to).
		Order("payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPaymentsForBetween filters by the period a payment covers (the
// "for"-date) rather than when it was received; reconciliation months key
// off this date.
func GetPaymentsForBetween(ctx context.Context, from, to time.Time) ([]Payment, error) {
	var payments []Payment
	db := config.GetDB()
	err := db.WithContext(ctx).
		Preload("Customer").
		Where("payment_for_date >= ? AND payment_for_date <= ?", from, to).
		Order("payment_for_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// GetAllPayments returns the unfiltered payment history (retained earnings,
// aging and receivables read the whole history).
func GetAllPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	db := config.GetDB()
	err := db.WithContext(ctx).
		Preload("Customer").
		Preload("Lease").
		Preload("Lease.Space").
		Order("payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
