package ingest

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"vue-workorders/internal/parser"
	"vue-workorders/internal/workorder"
)

// chunkSize is how many rows one normalization goroutine handles. Row
// normalization is pure, so chunks run in parallel and land back in input
// order.
const chunkSize = 512

// Report summarizes one load for the upload response.
type Report struct {
	Loaded   int                        `json:"loaded"`
	Dropped  int                        `json:"dropped"`
	Resolved map[string]workorder.Field `json:"resolved_headers"`
	Unmapped []string                   `json:"unmapped_headers,omitempty"`
	Warnings []parser.Warning           `json:"warnings,omitempty"`
	// NoHeadersRecognized is set when not a single incoming header mapped
	// to a canonical field. The load still succeeds; the UI warns.
	NoHeadersRecognized bool `json:"no_headers_recognized,omitempty"`
}

// Normalizer converts parsed uploads into canonical datasets.
type Normalizer struct {
	dateOrder workorder.DateOrder
}

func New(dateOrder workorder.DateOrder) *Normalizer {
	if dateOrder != workorder.OrderDMY {
		dateOrder = workorder.OrderMDY
	}
	return &Normalizer{dateOrder: dateOrder}
}

// NormalizeRecord builds one canonical record from a raw row. Every
// canonical field is populated: unresolved or missing columns become the
// empty string or Absent, date cells that parse to nothing become Absent.
// The second return is false when the record is blank across all
// identity-bearing fields and must be dropped.
func (n *Normalizer) NormalizeRecord(raw parser.RawRecord, hm HeaderMap) (workorder.Record, bool) {
	var rec workorder.Record
	for _, f := range workorder.Fields {
		header, ok := hm.ByField[f]
		if !ok {
			continue
		}
		cell := raw[header]
		if workorder.IsDateField(f) {
			rec.SetDate(f, workorder.ParseDate(cell, n.dateOrder))
		} else {
			rec.SetText(f, coerceText(cell))
		}
	}
	return rec, !rec.IsBlank()
}

// Load normalizes a parsed upload into a dataset, dropping blank trailer
// rows. Rows are processed in fixed-size chunks on an errgroup so big
// exports stay responsive and honor ctx cancellation.
func (n *Normalizer) Load(ctx context.Context, res *parser.Result) (workorder.Dataset, *Report, error) {
	const op = "ingest.Load"

	hm := ResolveHeaders(res.Headers)
	report := &Report{
		Resolved: hm.ByHeader,
		Unmapped: hm.Unmapped,
		Warnings: res.Warnings,
	}
	if len(hm.ByHeader) == 0 {
		report.NoHeadersRecognized = true
	}

	recs := make([]workorder.Record, len(res.Records))
	kept := make([]bool, len(res.Records))

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(res.Records); start += chunkSize {
		end := min(start+chunkSize, len(res.Records))
		start, end := start, end
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				recs[i], kept[i] = n.NormalizeRecord(res.Records[i], hm)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	dataset := make(workorder.Dataset, 0, len(recs))
	for i, rec := range recs {
		if kept[i] {
			dataset = append(dataset, rec)
		} else {
			report.Dropped++
		}
	}
	report.Loaded = len(dataset)

	return dataset, report, nil
}

// coerceText renders a raw cell as a trimmed string. Spreadsheet numeric
// cells print without a float suffix, so a work-order number read as
// 100.0 comes back as "100".
func coerceText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
