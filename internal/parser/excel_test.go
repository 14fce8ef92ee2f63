package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildXLSX(t *testing.T, cells map[string]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for axis, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", axis, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	data := buildXLSX(t, map[string]any{
		"A1": "Work Order", "B1": "Assigned To", "C1": "Sched. Start Date",
		"A2": "100", "B2": "Alice", "C2": 45292,
		"A3": "101", "B3": "Bob",
	})

	res, err := ParseXLSX(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work Order", "Assigned To", "Sched. Start Date"}, res.Headers)
	require.Len(t, res.Records, 2)

	// Numeric cells come through as float64 so serial dates stay intact.
	assert.Equal(t, "Alice", res.Records[0]["Assigned To"])
	assert.Equal(t, float64(45292), res.Records[0]["Sched. Start Date"])
	assert.Equal(t, "", res.Records[1]["Sched. Start Date"])
}

func TestParseXLSX_CellTyping(t *testing.T) {
	data := buildXLSX(t, map[string]any{
		"A1": "Work Order", "B1": "Equipment",
		"A2": 100, "B2": "00123",
	})

	res, err := ParseXLSX(data)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	// Numeric cells coerce to float64; string-typed cells keep their
	// exact text even when it looks numeric, leading zeros included.
	assert.Equal(t, float64(100), res.Records[0]["Work Order"])
	assert.Equal(t, "00123", res.Records[0]["Equipment"])
}

func TestParseXLSX_EmptySheet(t *testing.T) {
	data := buildXLSX(t, map[string]any{})
	_, err := ParseXLSX(data)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestParseXLSX_NotASpreadsheet(t *testing.T) {
	_, err := ParseXLSX([]byte("just,a,csv\n1,2,3\n"))
	assert.Error(t, err)
}
