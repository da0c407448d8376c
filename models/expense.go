package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID             int             `gorm:"primary_key" json:"id"`
	ExpenseDate    time.Time       `gorm:"index;not null" json:"expense_date" binding:"required"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Category       string          `gorm:"size:255;index" json:"category"`
	IsTaxInclusive *bool           `gorm:"not null;default:false" json:"is_tax_inclusive"`
	GstAmount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gst_amount"`
	Destination    string          `gorm:"size:255" json:"destination"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewExpense struct {
	ExpenseDate    time.Time       `json:"expense_date" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category"`
	IsTaxInclusive *bool           `json:"is_tax_inclusive"`
	GstAmount      decimal.Decimal `json:"gst_amount"`
	Destination    string          `json:"destination"`
	Notes          string          `json:"notes"`
}

// TaxParts decomposes the recorded gross amount, trusting the stored GST.
func (e *Expense) TaxParts() utils.TaxParts {
	return utils.DecomposeTax(e.Amount, utils.DereferencePtr(e.IsTaxInclusive, false), e.GstAmount)
}

// CategoryName absorbs an empty category with a sentinel key.
func (e *Expense) CategoryName() string {
	if e.Category != "" {
		return e.Category
	}
	return "Uncategorized"
}

func CreateExpense(ctx context.Context, input NewExpense) (*Expense, error) {
	inclusive := utils.DereferencePtr(input.IsTaxInclusive, false)
	if inclusive {
		if input.GstAmount.IsNegative() || input.GstAmount.GreaterThan(input.Amount) {
			return nil, errors.New("gst amount must be between zero and amount")
		}
	}
	expense := Expense{
		ExpenseDate:    input.ExpenseDate,
		Amount:         input.Amount,
		Category:       input.Category,
		IsTaxInclusive: input.IsTaxInclusive,
		GstAmount:      input.GstAmount,
		Destination:    input.Destination,
		Notes:          input.Notes,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func GetExpensesBetween(ctx context.Context, from, to time.Time) ([]Expense, error) {
	var expenses []Expense
	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", from, to).
		Order("expense_date").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func GetAllExpenses(ctx context.Context) ([]Expense, error) {
	var expenses []Expense
	db := config.GetDB()
	if err := db.WithContext(ctx).Order("expense_date").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
