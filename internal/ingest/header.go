// Package ingest turns raw parsed rows into canonical work-order records:
// it reconciles vendor-specific column headers against the synonym table
// and normalizes each row into the fixed field set.
package ingest

import (
	"strings"

	"vue-workorders/internal/workorder"
)

// synonymTable lists, per canonical field in declaration order, the
// normalized header spellings that resolve to it. Versioned with the
// field enumeration: adding a field means adding its synonyms here and
// nothing else. Entries are stored pre-normalized (lowercase, single
// spaces, no periods).
var synonymTable = []struct {
	field    workorder.Field
	synonyms []string
}{
	{workorder.FieldWorkOrder, []string{
		"work order", "work order number", "work order no", "work order #",
		"wo", "wo number", "wo no", "wo #", "order number",
	}},
	{workorder.FieldDescription, []string{
		"description", "work order description", "wo description",
		"task description", "job description", "summary",
	}},
	{workorder.FieldStatus, []string{
		"status", "work order status", "wo status", "current status",
	}},
	{workorder.FieldType, []string{
		"type", "work order type", "wo type", "order type", "work type",
	}},
	{workorder.FieldDepartment, []string{
		"department", "dept", "department name", "assigned department",
	}},
	{workorder.FieldEquipment, []string{
		"equipment", "equipment number", "equipment no", "equipment id",
		"asset", "asset number", "asset id",
	}},
	{workorder.FieldEquipmentDesc, []string{
		"equipment description", "equipment desc", "equipment name",
		"asset description", "asset name",
	}},
	{workorder.FieldSchedStart, []string{
		"sched start date", "sched start", "scheduled start date",
		"scheduled start", "schedule start date", "start date",
	}},
	{workorder.FieldOrigDue, []string{
		"orig due date", "orig due", "original due date", "original due",
		"due date",
	}},
	{workorder.FieldSchedEnd, []string{
		"sched end date", "sched end", "scheduled end date",
		"scheduled end", "schedule end date", "end date", "completion date",
	}},
	{workorder.FieldAssignedTo, []string{
		"assigned to", "assignee", "assigned", "assigned tech",
		"technician", "craftsperson",
	}},
}

// exactLookup is the synonym table flattened for the exact-match pass.
// Built once at init; first declaration wins so the table can never make
// one spelling mean two fields.
var exactLookup = buildExactLookup()

func buildExactLookup() map[string]workorder.Field {
	m := make(map[string]workorder.Field)
	for _, entry := range synonymTable {
		for _, syn := range entry.synonyms {
			if _, taken := m[syn]; !taken {
				m[syn] = entry.field
			}
		}
	}
	return m
}

// NormalizeHeader applies the canonical header normalization: strip a
// BOM, treat underscores and hyphens as spaces, lowercase, and collapse
// whitespace runs. Periods survive; the depunctuated pass strips them.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.NewReplacer("_", " ", "-", " ").Replace(h)
	h = strings.ToLower(h)
	return strings.Join(strings.Fields(h), " ")
}

// Resolve maps one raw header to its canonical field. Three passes, first
// hit wins: exact match of the normalized header, exact match with
// periods removed, then substring containment so trailing qualifiers like
// "Scheduled Start Date (Local)" still resolve. Unrecognized headers are
// simply unmapped, never an error.
func Resolve(header string) (workorder.Field, bool) {
	norm := NormalizeHeader(header)
	if norm == "" {
		return "", false
	}

	if f, ok := exactLookup[norm]; ok {
		return f, true
	}

	depunct := strings.Join(strings.Fields(strings.ReplaceAll(norm, ".", " ")), " ")
	if f, ok := exactLookup[depunct]; ok {
		return f, true
	}

	// Containment pass in declaration order, so earlier fields win when a
	// header could mean more than one.
	for _, entry := range synonymTable {
		for _, syn := range entry.synonyms {
			// Short synonyms like "wo" only match exactly; as substrings
			// they would swallow unrelated headers.
			if len(syn) < 4 {
				continue
			}
			if strings.Contains(depunct, syn) {
				return entry.field, true
			}
		}
	}

	return "", false
}

// HeaderMap is the per-file resolution of incoming headers, built once
// per upload and owned by the row-normalization step.
type HeaderMap struct {
	// ByField points each resolved canonical field at the first incoming
	// header that mapped to it.
	ByField map[workorder.Field]string
	// ByHeader records what every incoming header resolved to, for the
	// upload report. Unmapped headers are not present.
	ByHeader map[string]workorder.Field
	// Unmapped lists incoming headers no pass recognized, in file order.
	Unmapped []string
}

// ResolveHeaders applies Resolve to every incoming header. When two
// headers resolve to the same field the first column wins.
func ResolveHeaders(headers []string) HeaderMap {
	hm := HeaderMap{
		ByField:  make(map[workorder.Field]string),
		ByHeader: make(map[string]workorder.Field),
	}
	for _, h := range headers {
		f, ok := Resolve(h)
		if !ok {
			if strings.TrimSpace(h) != "" {
				hm.Unmapped = append(hm.Unmapped, h)
			}
			continue
		}
		hm.ByHeader[h] = f
		if _, taken := hm.ByField[f]; !taken {
			hm.ByField[f] = h
		}
	}
	return hm
}

// Synonyms exposes a copy of the synonym table keyed by field, for the
// admin inspection endpoint.
func Synonyms() map[workorder.Field][]string {
	out := make(map[workorder.Field][]string, len(synonymTable))
	for _, entry := range synonymTable {
		out[entry.field] = append([]string(nil), entry.synonyms...)
	}
	return out
}
