package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vue-workorders/internal/workorder"
)

func TestSession_ReplaceAndClear(t *testing.T) {
	s := New()

	ds, source := s.Snapshot()
	assert.Empty(t, ds)
	assert.Empty(t, source)

	s.Replace(workorder.Dataset{{WorkOrder: "100"}}, "export.csv")
	ds, source = s.Snapshot()
	assert.Len(t, ds, 1)
	assert.Equal(t, "export.csv", source)
	assert.Equal(t, 1, s.Len())

	// A new upload supersedes the old dataset wholesale.
	s.Replace(workorder.Dataset{{WorkOrder: "200"}, {WorkOrder: "201"}}, "other.xlsx")
	ds, _ = s.Snapshot()
	assert.Len(t, ds, 2)
	assert.Equal(t, "200", ds[0].WorkOrder)

	s.Clear()
	ds, source = s.Snapshot()
	assert.Empty(t, ds)
	assert.Empty(t, source)
}
