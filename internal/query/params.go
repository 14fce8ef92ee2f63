package query

import (
	"fmt"
	"net/url"
	"time"

	"vue-workorders/internal/workorder"
)

// categoricalParams are the equality filters the UI exposes.
var categoricalParams = []workorder.Field{
	workorder.FieldStatus,
	workorder.FieldType,
	workorder.FieldDepartment,
	workorder.FieldAssignedTo,
}

// FromQuery builds a filter Spec from request query parameters. Dates
// arrive as ISO YYYY-MM-DD; anything else is a caller error.
func FromQuery(values url.Values) (Spec, error) {
	spec := Spec{
		Keyword: values.Get("keyword"),
		Equals:  make(map[workorder.Field]string),
	}

	for _, f := range categoricalParams {
		if v := values.Get(string(f)); v != "" {
			spec.Equals[f] = v
		}
	}

	if df := values.Get("date_field"); df != "" {
		f := workorder.Field(df)
		if !workorder.IsDateField(f) {
			return Spec{}, fmt.Errorf("date_field %q is not a date field", df)
		}
		spec.DateField = f
	}

	var err error
	if spec.DateFrom, err = parseBound(values.Get("date_from")); err != nil {
		return Spec{}, fmt.Errorf("date_from: %w", err)
	}
	if spec.DateTo, err = parseBound(values.Get("date_to")); err != nil {
		return Spec{}, fmt.Errorf("date_to: %w", err)
	}

	return spec, nil
}

func parseBound(s string) (workorder.ISODate, error) {
	if s == "" {
		return workorder.Absent, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return workorder.Absent, fmt.Errorf("want YYYY-MM-DD, got %q", s)
	}
	return workorder.DateOf(t), nil
}

// SortFromQuery reads the sort column and direction. Empty sort means
// keep input order.
func SortFromQuery(values url.Values) (workorder.Field, bool, error) {
	s := values.Get("sort")
	if s == "" {
		return "", false, nil
	}
	f := workorder.Field(s)
	if !workorder.Valid(f) {
		return "", false, fmt.Errorf("unknown sort field %q", s)
	}
	return f, values.Get("dir") == "desc", nil
}
