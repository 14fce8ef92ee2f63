package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads delimited text into raw records. Ragged rows are padded
// or truncated to the header width with a warning rather than rejected;
// real-world exports are rarely rectangular. A file with a header row and
// zero data rows parses successfully to an empty result.
func ParseCSV(data []byte) (*Result, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}

	res := &Result{Headers: headers}
	rowNum := 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			res.Warnings = append(res.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}

		if got := len(row); got != len(headers) {
			if got < len(headers) {
				padded := make([]string, len(headers))
				copy(padded, row)
				row = padded
			} else {
				row = row[:len(headers)]
			}
			res.Warnings = append(res.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("row has %d columns, expected %d", got, len(headers)),
			})
		}

		record := make(RawRecord, len(headers))
		for i, h := range headers {
			record[h] = row[i]
		}
		res.Records = append(res.Records, record)
	}

	return res, nil
}
