package workorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldKinds(t *testing.T) {
	assert.Equal(t, KindText, KindOf(FieldWorkOrder))
	assert.Equal(t, KindDate, KindOf(FieldSchedStart))
	assert.True(t, IsDateField(FieldOrigDue))
	assert.False(t, IsDateField(FieldStatus))
	assert.False(t, Valid(Field("bogus")))
	assert.Equal(t, []Field{FieldSchedStart, FieldOrigDue, FieldSchedEnd}, DateFields())
}

func TestRecordAccessors(t *testing.T) {
	var r Record
	r.SetText(FieldAssignedTo, "Alice")
	r.SetDate(FieldSchedEnd, MakeDate(2024, time.May, 1))

	assert.Equal(t, "Alice", r.Text(FieldAssignedTo))
	assert.Equal(t, "Alice", r.AssignedTo)
	assert.Equal(t, MakeDate(2024, time.May, 1), r.Date(FieldSchedEnd))

	// Kind-mismatched lookups are zero values, not panics.
	assert.Equal(t, "", r.Text(FieldSchedStart))
	assert.Equal(t, Absent, r.Date(FieldStatus))
}

func TestRecordIsBlank(t *testing.T) {
	var r Record
	assert.True(t, r.IsBlank())

	// Non-identity fields alone do not make a record real.
	r.Status = "OPEN"
	r.Type = "PM"
	r.Department = "Maintenance"
	assert.True(t, r.IsBlank())

	r.AssignedTo = "Bob"
	assert.False(t, r.IsBlank())

	r = Record{OrigDue: MakeDate(2024, time.January, 1)}
	assert.False(t, r.IsBlank())
}
