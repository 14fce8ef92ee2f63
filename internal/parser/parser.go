// Package parser reads tabular uploads (delimited text or XLSX) into
// header-keyed raw records. It preserves row order and does not interpret
// values beyond what the container encodes: CSV cells are always strings,
// spreadsheet cells may surface as numbers.
package parser

import "errors"

// ErrNoHeader is returned when a file has no header row to key records by.
var ErrNoHeader = errors.New("no header row found")

// RawRecord maps a file's literal header strings to one row's cell
// values. Values are string or float64 depending on the source format.
type RawRecord map[string]any

// Warning is a non-fatal, per-row issue found while reading a file.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result is the parsed content of one upload.
type Result struct {
	Headers  []string    `json:"headers"`
	Records  []RawRecord `json:"-"`
	Warnings []Warning   `json:"warnings,omitempty"`
}
