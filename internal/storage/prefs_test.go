package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vue-workorders/internal/workorder"
)

func TestDefaultPrefs(t *testing.T) {
	p := DefaultPrefs()
	assert.Equal(t, workorder.FieldSchedStart, p.DateField)
	assert.Equal(t, workorder.Fields, p.ColumnOrder)
}

func TestSanitize_DropsUnknownFields(t *testing.T) {
	p := Prefs{
		DateField: workorder.Field("bogus"),
		ColumnOrder: []workorder.Field{
			workorder.FieldWorkOrder,
			workorder.Field("ghost"),
			workorder.FieldStatus,
		},
	}.Sanitize()

	assert.Equal(t, workorder.FieldSchedStart, p.DateField)
	assert.Equal(t, []workorder.Field{workorder.FieldWorkOrder, workorder.FieldStatus}, p.ColumnOrder)
}

func TestSanitize_EmptyFallsBackToDefaults(t *testing.T) {
	p := Prefs{}.Sanitize()
	assert.Equal(t, workorder.FieldSchedStart, p.DateField)
	assert.Equal(t, workorder.Fields, p.ColumnOrder)
}

func TestSanitize_NonDateFieldRejected(t *testing.T) {
	p := Prefs{DateField: workorder.FieldStatus}.Sanitize()
	assert.Equal(t, workorder.FieldSchedStart, p.DateField)
}
