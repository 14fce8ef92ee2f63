package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vue-workorders/internal/workorder"
)

func TestSort_NumericAwareText(t *testing.T) {
	ds := workorder.Dataset{
		{WorkOrder: "WO-10"},
		{WorkOrder: "WO-9"},
		{WorkOrder: "WO-100"},
	}
	Sort(ds, workorder.FieldWorkOrder, false)
	assert.Equal(t, "WO-9", ds[0].WorkOrder)
	assert.Equal(t, "WO-10", ds[1].WorkOrder)
	assert.Equal(t, "WO-100", ds[2].WorkOrder)
}

func TestSort_TextCaseInsensitive(t *testing.T) {
	ds := workorder.Dataset{
		{AssignedTo: "bob"},
		{AssignedTo: "Alice"},
		{AssignedTo: "carol"},
	}
	Sort(ds, workorder.FieldAssignedTo, false)
	assert.Equal(t, "Alice", ds[0].AssignedTo)
	assert.Equal(t, "bob", ds[1].AssignedTo)
	assert.Equal(t, "carol", ds[2].AssignedTo)
}

func TestSort_TextDescending(t *testing.T) {
	ds := workorder.Dataset{
		{AssignedTo: "Alice"},
		{AssignedTo: "Bob"},
	}
	Sort(ds, workorder.FieldAssignedTo, true)
	assert.Equal(t, "Bob", ds[0].AssignedTo)
}

func TestSort_DatesChronological(t *testing.T) {
	ds := workorder.Dataset{
		{WorkOrder: "b", SchedStart: workorder.MakeDate(2024, time.February, 1)},
		{WorkOrder: "a", SchedStart: workorder.MakeDate(2024, time.January, 9)},
		{WorkOrder: "c", SchedStart: workorder.MakeDate(2024, time.January, 10)},
	}
	Sort(ds, workorder.FieldSchedStart, false)
	assert.Equal(t, "a", ds[0].WorkOrder)
	assert.Equal(t, "c", ds[1].WorkOrder)
	assert.Equal(t, "b", ds[2].WorkOrder)
}

func TestSort_AbsentDatesSinkBothDirections(t *testing.T) {
	build := func() workorder.Dataset {
		return workorder.Dataset{
			{WorkOrder: "undated"},
			{WorkOrder: "late", SchedStart: workorder.MakeDate(2024, time.June, 1)},
			{WorkOrder: "early", SchedStart: workorder.MakeDate(2024, time.January, 1)},
		}
	}

	asc := build()
	Sort(asc, workorder.FieldSchedStart, false)
	require.Equal(t, "undated", asc[2].WorkOrder)
	assert.Equal(t, "early", asc[0].WorkOrder)

	desc := build()
	Sort(desc, workorder.FieldSchedStart, true)
	require.Equal(t, "undated", desc[2].WorkOrder)
	assert.Equal(t, "late", desc[0].WorkOrder)
}

func TestSort_UnknownFieldIsNoop(t *testing.T) {
	ds := workorder.Dataset{{WorkOrder: "b"}, {WorkOrder: "a"}}
	Sort(ds, workorder.Field("bogus"), false)
	assert.Equal(t, "b", ds[0].WorkOrder)
}
