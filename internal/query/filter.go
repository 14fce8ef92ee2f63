// Package query answers the interactive questions over a loaded dataset:
// conjunctive filtering, display ordering, and the assignee-by-date pivot.
// Everything here is a pure computation over an immutable snapshot.
package query

import (
	"strings"

	"vue-workorders/internal/workorder"
)

// Spec is one filter configuration. All active predicates must hold for a
// record to pass (conjunction). The zero Spec matches everything.
type Spec struct {
	// Keyword is matched case-insensitively as a substring across all
	// text fields plus the display form of the three dates, so searching
	// "12/25" hits a date column.
	Keyword string
	// Equals holds categorical filters (status, type, department,
	// assigned_to): exact required values per field.
	Equals map[workorder.Field]string
	// DateField selects which date the range below (and the pivot)
	// operates on. Must be date-kind; defaults to sched_start.
	DateField workorder.Field
	DateFrom  workorder.ISODate
	DateTo    workorder.ISODate
}

// EffectiveDateField returns the spec's date field, falling back to
// sched_start when unset or not date-kind.
func (s Spec) EffectiveDateField() workorder.Field {
	if workorder.IsDateField(s.DateField) {
		return s.DateField
	}
	return workorder.FieldSchedStart
}

// Filter returns the order-preserving subsequence of dataset matching
// every active predicate. An empty spec returns the dataset as-is.
func Filter(dataset workorder.Dataset, spec Spec) workorder.Dataset {
	out := make(workorder.Dataset, 0, len(dataset))
	keyword := strings.ToLower(strings.TrimSpace(spec.Keyword))
	for i := range dataset {
		if matches(&dataset[i], spec, keyword) {
			out = append(out, dataset[i])
		}
	}
	return out
}

func matches(rec *workorder.Record, spec Spec, keyword string) bool {
	if keyword != "" && !strings.Contains(searchText(rec), keyword) {
		return false
	}

	for f, want := range spec.Equals {
		if want == "" {
			continue
		}
		if rec.Text(f) != want {
			return false
		}
	}

	if spec.DateFrom != workorder.Absent || spec.DateTo != workorder.Absent {
		d := rec.Date(spec.EffectiveDateField())
		// A range filter never matches a missing date.
		if d.IsAbsent() {
			return false
		}
		if spec.DateFrom != workorder.Absent && d < spec.DateFrom {
			return false
		}
		if spec.DateTo != workorder.Absent && d > spec.DateTo {
			return false
		}
	}

	return true
}

// searchText is the haystack for keyword search: every text field plus
// the MM/DD/YYYY form of every date, lowercased and separator-joined.
func searchText(rec *workorder.Record) string {
	parts := make([]string, 0, len(workorder.Fields))
	for _, f := range workorder.Fields {
		if workorder.IsDateField(f) {
			parts = append(parts, rec.Date(f).Display())
		} else {
			parts = append(parts, rec.Text(f))
		}
	}
	return strings.ToLower(strings.Join(parts, "|"))
}
