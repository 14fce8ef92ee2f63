package storage

import (
	"context"
	"errors"

	"vue-workorders/internal/workorder"
)

// ErrNotFound is returned when no preferences are saved under a key.
var ErrNotFound = errors.New("prefs not found")

// PrefsKey is the fixed storage identifier the SPA's state lives under.
const PrefsKey = "workorder-analyzer"

// Prefs is the UI state persisted across sessions: the last-selected
// aggregation date field and the user's column display order. Missing or
// corrupt saved state falls back to DefaultPrefs, never an error.
type Prefs struct {
	DateField   workorder.Field   `json:"date_field"`
	ColumnOrder []workorder.Field `json:"column_order"`
}

// DefaultPrefs is what the UI gets before anything was ever saved.
func DefaultPrefs() Prefs {
	return Prefs{
		DateField:   workorder.FieldSchedStart,
		ColumnOrder: append([]workorder.Field(nil), workorder.Fields...),
	}
}

// Sanitize drops unknown fields from saved prefs so a stale or corrupt
// payload degrades to defaults instead of breaking the UI.
func (p Prefs) Sanitize() Prefs {
	if !workorder.IsDateField(p.DateField) {
		p.DateField = workorder.FieldSchedStart
	}
	cols := make([]workorder.Field, 0, len(p.ColumnOrder))
	for _, f := range p.ColumnOrder {
		if workorder.Valid(f) {
			cols = append(cols, f)
		}
	}
	if len(cols) == 0 {
		cols = append(cols, workorder.Fields...)
	}
	p.ColumnOrder = cols
	return p
}

// PrefsStore persists UI preferences keyed by storage identifier.
type PrefsStore interface {
	GetPrefs(ctx context.Context, key string) (*Prefs, error)
	SavePrefs(ctx context.Context, key string, prefs Prefs) error
}
