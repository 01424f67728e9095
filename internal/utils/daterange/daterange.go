// Package daterange turns calendar-day filters into half-open timestamp bounds.
package daterange

import (
	"fmt"
	"time"
)

// DayLayout is the wire format of fromDate/toDate.
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DayLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// Bounds converts optional from/to days into [from 00:00, day-after-to 00:00).
// Empty strings leave that side open. from after to is an error.
func Bounds(from, to string, loc *time.Location) (*time.Time, *time.Time, error) {
	var start, endExclusive *time.Time
	if from != "" {
		t, err := ParseDay(from, loc)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if to != "" {
		t, err := ParseDay(to, loc)
		if err != nil {
			return nil, nil, err
		}
		next := t.AddDate(0, 0, 1)
		endExclusive = &next
	}
	if start != nil && endExclusive != nil && !start.Before(*endExclusive) {
		return nil, nil, fmt.Errorf("fromDate %s is after toDate %s", from, to)
	}
	return start, endExclusive, nil
}

// FormatDay renders t as DD-MM-YYYY in loc, the format used on exported reports.
func FormatDay(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("02-01-2006")
}
