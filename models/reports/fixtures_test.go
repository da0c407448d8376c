package reports_test

import (
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func inclusivePayment(amount, gst string, paymentDate string) models.Payment {
	return models.Payment{
		Amount:         dec(amount),
		GstAmount:      dec(gst),
		IsTaxInclusive: utils.NewTrue(),
		PaymentDate:    day(paymentDate),
		PaymentForDate: day(paymentDate),
	}
}

func exclusiveExpense(amount, category string, date string) models.Expense {
	return models.Expense{
		Amount:         dec(amount),
		Category:       category,
		IsTaxInclusive: utils.NewFalse(),
		ExpenseDate:    day(date),
	}
}

func leaseFor(id int, customer, space string, category models.SpaceCategory, monthly string, inclusive bool, start string) models.Lease {
	var monthlyPrice *decimal.Decimal
	if monthly != "" {
		d := dec(monthly)
		monthlyPrice = &d
	}
	taxFlag := utils.NewFalse()
	if inclusive {
		taxFlag = utils.NewTrue()
	}
	return models.Lease{
		ID:             id,
		Status:         models.LeaseStatusActive,
		StartDate:      day(start),
		MonthlyPrice:   monthlyPrice,
		IsTaxInclusive: taxFlag,
		Customer:       &models.Customer{Name: customer},
		Space:          &models.Space{Name: space, Category: category, PricePerDay: dec("500")},
	}
}

func leasePayment(leaseId int, forDate string) models.Payment {
	id := leaseId
	return models.Payment{
		LeaseId:        &id,
		Amount:         dec("1000"),
		PaymentDate:    day(forDate),
		PaymentForDate: day(forDate),
		IsTaxInclusive: utils.NewFalse(),
	}
}
