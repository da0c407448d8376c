package utils_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

func TestDecomposeTaxInclusiveTrustsStoredAmount(t *testing.T) {
	parts := utils.DecomposeTax(decimal.NewFromInt(1180), true, decimal.NewFromInt(180))
	if !parts.Base.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("base = %s, want 1000", parts.Base)
	}
	if !parts.Tax.Equal(decimal.NewFromInt(180)) {
		t.Errorf("tax = %s, want 180", parts.Tax)
	}
	if !parts.Gross.Equal(decimal.NewFromInt(1180)) {
		t.Errorf("gross = %s, want 1180", parts.Gross)
	}
}

func TestDecomposeTaxExclusive(t *testing.T) {
	parts := utils.DecomposeTax(decimal.NewFromInt(500), false, decimal.Zero)
	if !parts.Base.Equal(decimal.NewFromInt(500)) || !parts.Tax.IsZero() || !parts.Gross.Equal(decimal.NewFromInt(500)) {
		t.Errorf("exclusive decomposition wrong: %+v", parts)
	}
}

// base + tax must reproduce the gross exactly; decomposition introduces no
// rounding drift because the stored tax is subtracted, never recomputed.
func TestDecomposeTaxNoRoundingDrift(t *testing.T) {
	amounts := []struct{ amount, tax string }{
		{"1180", "180"},
		{"999.99", "152.54"},
		{"0.01", "0.01"},
		{"123456.78", "18831.37"},
	}
	for _, a := range amounts {
		amount := decimal.RequireFromString(a.amount)
		tax := decimal.RequireFromString(a.tax)
		parts := utils.DecomposeTax(amount, true, tax)
		if !parts.Base.Add(parts.Tax).Equal(amount) {
			t.Errorf("base+tax != amount for %s/%s", a.amount, a.tax)
		}
	}
}

func TestProjectTaxOnBase(t *testing.T) {
	tax := utils.ProjectTaxOnBase(decimal.NewFromInt(1000))
	if !tax.Equal(decimal.NewFromInt(180)) {
		t.Errorf("projected tax = %s, want 180", tax)
	}
}
