package query

import (
	"sort"
	"strings"

	"vue-workorders/internal/workorder"
)

// UnassignedLabel buckets records whose assignee field is empty.
const UnassignedLabel = "(Unassigned)"

// Pivot is the assignee-by-date count table. Rows are assignees sorted
// alphabetically, columns are dates in chronological order. Records with
// no date on the selected field are excluded entirely: the pivot answers
// "how many are scheduled on date X", and an undated row has no X.
type Pivot struct {
	DateField  workorder.Field                      `json:"date_field"`
	Assignees  []string                             `json:"assignees"`
	Dates      []workorder.ISODate                  `json:"dates"`
	Cells      map[string]map[workorder.ISODate]int `json:"cells"`
	RowTotals  map[string]int                       `json:"row_totals"`
	ColTotals  map[workorder.ISODate]int            `json:"col_totals"`
	GrandTotal int                                  `json:"grand_total"`
}

// Aggregate counts records per (assignee, date) pair over dateField,
// with per-assignee, per-date and grand totals. Zero records in, empty
// pivot out.
func Aggregate(records workorder.Dataset, dateField workorder.Field) *Pivot {
	if !workorder.IsDateField(dateField) {
		dateField = workorder.FieldSchedStart
	}

	p := &Pivot{
		DateField: dateField,
		Cells:     make(map[string]map[workorder.ISODate]int),
		RowTotals: make(map[string]int),
		ColTotals: make(map[workorder.ISODate]int),
	}

	for i := range records {
		d := records[i].Date(dateField)
		if d.IsAbsent() {
			continue
		}
		assignee := strings.TrimSpace(records[i].AssignedTo)
		if assignee == "" {
			assignee = UnassignedLabel
		}

		row, ok := p.Cells[assignee]
		if !ok {
			row = make(map[workorder.ISODate]int)
			p.Cells[assignee] = row
		}
		row[d]++
		p.RowTotals[assignee]++
		p.ColTotals[d]++
		p.GrandTotal++
	}

	p.Assignees = make([]string, 0, len(p.Cells))
	for a := range p.Cells {
		p.Assignees = append(p.Assignees, a)
	}
	sort.Strings(p.Assignees)

	p.Dates = make([]workorder.ISODate, 0, len(p.ColTotals))
	for d := range p.ColTotals {
		p.Dates = append(p.Dates, d)
	}
	sort.Slice(p.Dates, func(i, j int) bool { return p.Dates[i] < p.Dates[j] })

	return p
}
