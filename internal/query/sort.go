package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"vue-workorders/internal/workorder"
)

// Sort orders records in place by one field for display. Text fields use
// a case-insensitive, numeric-aware collation so "WO-9" sorts before
// "WO-10"; date fields compare their ISO strings, which is chronological
// order for free. Missing dates always sink to the bottom, whatever the
// direction. Equal keys may land in either relative order.
func Sort(records workorder.Dataset, field workorder.Field, descending bool) {
	if !workorder.Valid(field) {
		return
	}

	if workorder.IsDateField(field) {
		sort.Slice(records, func(i, j int) bool {
			a, b := records[i].Date(field), records[j].Date(field)
			if a.IsAbsent() || b.IsAbsent() {
				return !a.IsAbsent() && b.IsAbsent()
			}
			if descending {
				return b < a
			}
			return a < b
		})
		return
	}

	// Collators buffer internally, so build one per call rather than
	// sharing across requests.
	c := collate.New(language.AmericanEnglish, collate.IgnoreCase, collate.Numeric)
	sort.Slice(records, func(i, j int) bool {
		cmp := c.CompareString(records[i].Text(field), records[j].Text(field))
		if descending {
			cmp = -cmp
		}
		return cmp < 0
	})
}
