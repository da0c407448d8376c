package reports

import (
	"sort"

	"bitbucket.org/mmdatafocus/spaces_backend/utils"
	"github.com/shopspring/decimal"
)

// TotalsBreakdown carries the base/tax split next to the gross total.
type TotalsBreakdown struct {
	Base  decimal.Decimal `json:"base"`
	Gst   decimal.Decimal `json:"gst"`
	Total decimal.Decimal `json:"total"`
}

func (t *TotalsBreakdown) add(parts utils.TaxParts) {
	t.Base = t.Base.Add(parts.Base)
	t.Gst = t.Gst.Add(parts.Tax)
	t.Total = t.Total.Add(parts.Gross)
}

// GroupEntry is one bucket of a grouped report, ready for presentation.
type GroupEntry struct {
	Key   string          `json:"key"`
	Base  decimal.Decimal `json:"base"`
	Gst   decimal.Decimal `json:"gst"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// sortedGroupEntries orders buckets descending by gross total, key ascending
// on ties, so report output is stable run to run.
func sortedGroupEntries(groups map[string]*utils.GroupTotals) []GroupEntry {
	entries := make([]GroupEntry, 0, len(groups))
	for key, g := range groups {
		entries = append(entries, GroupEntry{
			Key:   key,
			Base:  g.Base,
			Gst:   g.Tax,
			Total: g.Total,
			Count: g.Count,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Total.Equal(entries[j].Total) {
			return entries[i].Total.GreaterThan(entries[j].Total)
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
