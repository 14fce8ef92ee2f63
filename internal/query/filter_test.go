package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vue-workorders/internal/workorder"
)

func testDataset() workorder.Dataset {
	return workorder.Dataset{
		{WorkOrder: "100", Description: "Replace bearing", Status: "OPEN", Department: "Mechanical",
			AssignedTo: "Alice", SchedStart: workorder.MakeDate(2024, time.January, 5)},
		{WorkOrder: "101", Description: "Inspect pump", Status: "CLOSED", Department: "Mechanical",
			AssignedTo: "Alice", SchedStart: workorder.MakeDate(2024, time.January, 8)},
		{WorkOrder: "102", Description: "Rewire panel", Status: "OPEN", Department: "Electrical",
			AssignedTo: "Bob", SchedStart: workorder.Absent},
		{WorkOrder: "103", Description: "Lubricate chain", Status: "OPEN", Department: "Mechanical",
			AssignedTo: "Carol", SchedStart: workorder.MakeDate(2024, time.December, 25)},
	}
}

func TestFilter_EmptySpecIsIdentity(t *testing.T) {
	ds := testDataset()
	got := Filter(ds, Spec{})
	assert.Equal(t, ds, got)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(testDataset(), Spec{Equals: map[workorder.Field]string{
		workorder.FieldStatus: "OPEN",
	}})
	require.Len(t, got, 3)
	assert.Equal(t, "100", got[0].WorkOrder)
	assert.Equal(t, "102", got[1].WorkOrder)
	assert.Equal(t, "103", got[2].WorkOrder)
}

func TestFilter_Conjunction(t *testing.T) {
	got := Filter(testDataset(), Spec{
		Keyword: "alice",
		Equals: map[workorder.Field]string{
			workorder.FieldStatus: "OPEN",
		},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].WorkOrder)
}

func TestFilter_KeywordIsCaseInsensitive(t *testing.T) {
	got := Filter(testDataset(), Spec{Keyword: "REWIRE"})
	require.Len(t, got, 1)
	assert.Equal(t, "102", got[0].WorkOrder)
}

func TestFilter_KeywordMatchesDisplayedDates(t *testing.T) {
	// "12/25" only appears in the display form of a date column.
	got := Filter(testDataset(), Spec{Keyword: "12/25"})
	require.Len(t, got, 1)
	assert.Equal(t, "103", got[0].WorkOrder)
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	got := Filter(testDataset(), Spec{
		DateField: workorder.FieldSchedStart,
		DateFrom:  workorder.MakeDate(2024, time.January, 5),
		DateTo:    workorder.MakeDate(2024, time.January, 8),
	})
	require.Len(t, got, 2)
	assert.Equal(t, "100", got[0].WorkOrder)
	assert.Equal(t, "101", got[1].WorkOrder)
}

func TestFilter_RangeExcludesAbsentDates(t *testing.T) {
	// Any active bound excludes records with no date on the range field,
	// whatever their other fields hold.
	got := Filter(testDataset(), Spec{
		DateField: workorder.FieldSchedStart,
		DateFrom:  workorder.MakeDate(2020, time.January, 1),
	})
	for _, rec := range got {
		assert.NotEqual(t, workorder.Absent, rec.SchedStart)
	}
	require.Len(t, got, 3)

	// With no bounds set, absent-date records pass.
	got = Filter(testDataset(), Spec{DateField: workorder.FieldSchedStart})
	assert.Len(t, got, 4)
}

func TestFilter_EmptyDataset(t *testing.T) {
	got := Filter(nil, Spec{Keyword: "anything"})
	assert.Empty(t, got)
}

func TestEffectiveDateField(t *testing.T) {
	assert.Equal(t, workorder.FieldSchedStart, Spec{}.EffectiveDateField())
	assert.Equal(t, workorder.FieldOrigDue, Spec{DateField: workorder.FieldOrigDue}.EffectiveDateField())
	assert.Equal(t, workorder.FieldSchedStart, Spec{DateField: workorder.FieldStatus}.EffectiveDateField())
}
