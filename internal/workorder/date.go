package workorder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODate is a calendar date stored as "YYYY-MM-DD". The zero value is
// Absent, the explicit no-date marker. Keeping dates as ISO strings means
// lexicographic order equals chronological order, so filtering and
// sorting never parse dates again after ingest.
type ISODate string

// Absent marks a cell that carried no parseable date.
const Absent ISODate = ""

// IsAbsent reports whether d carries no date.
func (d ISODate) IsAbsent() bool { return d == Absent }

// Display renders the date as MM/DD/YYYY for the UI and for keyword
// search. Absent renders as the empty string.
func (d ISODate) Display() string {
	if d.IsAbsent() || len(d) != 10 {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", d[5:7], d[8:10], d[0:4])
}

// DateOrder says how ambiguous slash-separated dates are read. US exports
// use month/day/year; the policy is configurable rather than hardcoded.
type DateOrder string

const (
	OrderMDY DateOrder = "mdy"
	OrderDMY DateOrder = "dmy"
)

// serialEpoch is December 30, 1899: the classic spreadsheet day-zero, so
// serial 1 is December 31, 1899. Changing this corrupts every date in a
// spreadsheet import.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerial caps serial values at 9999-12-31.
const maxSerial = 2958465

// MakeDate builds an ISODate from calendar parts without validation.
func MakeDate(year int, month time.Month, day int) ISODate {
	return ISODate(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// DateOf takes the calendar date of t, discarding the time of day.
func DateOf(t time.Time) ISODate {
	y, m, d := t.Date()
	return MakeDate(y, m, d)
}

// ParseDate converts a raw cell value into an ISODate, or Absent when the
// value carries no recognizable date. Dispatch order: native date values,
// spreadsheet serial numbers, then text. Never fails; bad input is Absent.
func ParseDate(raw any, order DateOrder) ISODate {
	switch v := raw.(type) {
	case nil:
		return Absent
	case time.Time:
		if v.IsZero() {
			return Absent
		}
		return DateOf(v)
	case float64:
		return fromSerial(v)
	case float32:
		return fromSerial(float64(v))
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		return parseDateText(v, order)
	default:
		return Absent
	}
}

// fromSerial converts a spreadsheet serial day count. The fraction is the
// time of day and is discarded.
func fromSerial(serial float64) ISODate {
	days := int(serial)
	if days < 1 || days > maxSerial {
		return Absent
	}
	return DateOf(serialEpoch.AddDate(0, 0, days))
}

func parseDateText(s string, order DateOrder) ISODate {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent
	}

	// Serial conversion applies to numeric values only; the spreadsheet
	// parser hands those over as float64. Text that happens to be all
	// digits ("2024") is not a date.
	if d, ok := parseSlashDate(s, order); ok {
		return d
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return DateOf(t)
	}

	// Last-resort layouts seen in the wild.
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006/01/02",
		"January 2, 2006",
		"Jan 2, 2006",
		"2 January 2006",
		"2 Jan 2006",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}

	return Absent
}

// parseSlashDate reads "M/D/YYYY" (or "D/M/YYYY" under OrderDMY). A
// 2-digit year expands to 20YY; the source data never predates 2000.
func parseSlashDate(s string, order DateOrder) (ISODate, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Absent, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Absent, false
		}
		nums[i] = n
	}

	month, day, year := nums[0], nums[1], nums[2]
	if order == OrderDMY {
		month, day = day, month
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year > 9999 {
		return Absent, false
	}

	// time.Date normalizes overflow (Feb 30 becomes Mar 2), so verify the
	// parts survived the round trip.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Absent, false
	}

	return DateOf(t), true
}
