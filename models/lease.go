package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"github.com/shopspring/decimal"
)

// Lease records a customer's occupancy of a space, with its own pricing
// and tax terms. Active leases drive receivables and aging.
type Lease struct {
	ID                 int              `gorm:"primary_key" json:"id"`
	CustomerId         int              `gorm:"index;not null" json:"customer_id" binding:"required"`
	Customer           *Customer        `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	SpaceId            int              `gorm:"index;not null" json:"space_id" binding:"required"`
	Space              *Space           `gorm:"foreignKey:SpaceId" json:"space,omitempty"`
	Status             LeaseStatus      `gorm:"size:20;index;not null;default:'active'" json:"status"`
	StartDate          time.Time        `gorm:"not null" json:"start_date" binding:"required"`
	MonthlyPrice       *decimal.Decimal `gorm:"type:decimal(20,4)" json:"monthly_price"`
	IsTaxInclusive     *bool            `gorm:"not null;default:false" json:"is_tax_inclusive"`
	PaymentDestination string           `gorm:"size:255" json:"payment_destination"`
	SecurityDeposit    decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"security_deposit"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewLease struct {
	CustomerId         int              `json:"customer_id" binding:"required"`
	SpaceId            int              `json:"space_id" binding:"required"`
	StartDate          time.Time        `json:"start_date" binding:"required"`
	MonthlyPrice       *decimal.Decimal `json:"monthly_price"`
	IsTaxInclusive     *bool            `json:"is_tax_inclusive"`
	PaymentDestination string           `json:"payment_destination"`
	SecurityDeposit    decimal.Decimal  `json:"security_deposit"`
}

// ExpectedMonthlyCharge is the lease's monthly price, falling back to the
// space's daily price when the lease has none, else zero.
func (l *Lease) ExpectedMonthlyCharge() decimal.Decimal {
	if l.MonthlyPrice != nil {
		return *l.MonthlyPrice
	}
	if l.Space != nil {
		return l.Space.PricePerDay
	}
	return decimal.Zero
}

// CustomerDisplayName absorbs a missing customer join with a sentinel so
// one malformed lease cannot abort a report.
func (l *Lease) CustomerDisplayName() string {
	if name := l.Customer.DisplayName(); name != "" {
		return name
	}
	return "Unknown"
}

// SpaceName falls back to a sentinel when the space join is unresolvable.
func (l *Lease) SpaceName() string {
	if l.Space != nil && l.Space.Name != "" {
		return l.Space.Name
	}
	return "Unassigned"
}

func CreateLease(ctx context.Context, input NewLease) (*Lease, error) {
	if input.MonthlyPrice != nil && input.MonthlyPrice.IsNegative() {
		return nil, errors.New("monthly price must not be negative")
	}
	lease := Lease{
		CustomerId:         input.CustomerId,
		SpaceId:            input.SpaceId,
		Status:             LeaseStatusActive,
		StartDate:          input.StartDate,
		MonthlyPrice:       input.MonthlyPrice,
		IsTaxInclusive:     input.IsTaxInclusive,
		PaymentDestination: input.PaymentDestination,
		SecurityDeposit:    input.SecurityDeposit,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&lease).Error; err != nil {
		return nil, err
	}
	return &lease, nil
}

// GetActiveLeases returns active leases joined with customer and space.
func GetActiveLeases(ctx context.Context) ([]Lease, error) {
	var leases []Lease
	db := config.GetDB()
	err := db.WithContext(ctx).
		Preload("Customer").
		Preload("Space").
		Where("status = ?", LeaseStatusActive).
		Order("id").
		Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return leases, nil
}
