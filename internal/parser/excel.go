package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first worksheet of an XLSX file into raw records.
// Rows come back in raw-cell mode, so date cells surface as their serial
// day count instead of a locale-formatted string; numeric cells are
// handed on as float64 and string-typed cells as string.
func ParseXLSX(data []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 || allEmpty(rows[0]) {
		return nil, ErrNoHeader
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}

	res := &Result{Headers: headers}
	for rowIdx, row := range rows[1:] {
		record := make(RawRecord, len(headers))
		for i, h := range headers {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			record[h] = coerceCell(f, sheets[0], i+1, rowIdx+2, cell)
		}
		res.Records = append(res.Records, record)
	}

	return res, nil
}

// coerceCell keeps the distinction the container encodes: numeric cells
// become float64 so serial dates stay recognizable downstream, while
// cells the sheet types as strings stay strings even when their content
// looks numeric, so identifiers like "00123" keep their leading zeros.
func coerceCell(f *excelize.File, sheet string, col, row int, s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return s
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return s
	}
	if ct, err := f.GetCellType(sheet, axis); err == nil && isStringCellType(ct) {
		return s
	}
	return n
}

func isStringCellType(ct excelize.CellType) bool {
	return ct == excelize.CellTypeSharedString || ct == excelize.CellTypeInlineString
}

func allEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
