package utils

import "github.com/shopspring/decimal"

// GstProjectionRate is the nominal rate applied when projecting tax on
// forward-looking amounts (expected rent). Historical rows always carry
// their collected tax amount and are never re-derived from this rate.
var GstProjectionRate = decimal.NewFromFloat(0.18)

type TaxParts struct {
	Base  decimal.Decimal
	Tax   decimal.Decimal
	Gross decimal.Decimal
}

// DecomposeTax splits a recorded gross amount into base/tax/gross.
// Inclusive rows trust the stored tax amount; exclusive rows carry no tax.
func DecomposeTax(amount decimal.Decimal, isTaxInclusive bool, taxAmount decimal.Decimal) TaxParts {
	if !isTaxInclusive {
		return TaxParts{Base: amount, Tax: decimal.Zero, Gross: amount}
	}
	return TaxParts{
		Base:  amount.Sub(taxAmount),
		Tax:   taxAmount,
		Gross: amount,
	}
}

// ProjectTaxOnBase applies the nominal rate to a known base amount.
// Only projections (expected future rent) use this; see DecomposeTax for
// historical rows.
func ProjectTaxOnBase(base decimal.Decimal) decimal.Decimal {
	return base.Mul(GstProjectionRate)
}
