package utils

import "github.com/shopspring/decimal"

// GroupTotals accumulates one bucket of a grouped aggregation. Total always
// carries gross amounts; Base/Tax carry the decomposition of each record.
type GroupTotals struct {
	Base  decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
	Count int
}

func (g *GroupTotals) add(parts TaxParts) {
	g.Base = g.Base.Add(parts.Base)
	g.Tax = g.Tax.Add(parts.Tax)
	g.Total = g.Total.Add(parts.Gross)
	g.Count++
}

// GroupBy buckets records by keyFn and accumulates the tax decomposition
// returned by valueFn. Buckets are created lazily on first occurrence.
// Presentation ordering is the caller's concern.
func GroupBy[T any](records []T, keyFn func(T) string, valueFn func(T) TaxParts) map[string]*GroupTotals {
	groups := make(map[string]*GroupTotals)
	for _, record := range records {
		key := keyFn(record)
		group, ok := groups[key]
		if !ok {
			group = &GroupTotals{}
			groups[key] = group
		}
		group.add(valueFn(record))
	}
	return groups
}

// SumGroups folds every bucket back into one total, used to cross-check a
// grouped report against its ungrouped figures.
func SumGroups(groups map[string]*GroupTotals) GroupTotals {
	var sum GroupTotals
	for _, g := range groups {
		sum.Base = sum.Base.Add(g.Base)
		sum.Tax = sum.Tax.Add(g.Tax)
		sum.Total = sum.Total.Add(g.Total)
		sum.Count += g.Count
	}
	return sum
}
