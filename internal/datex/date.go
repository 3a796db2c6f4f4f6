// Package datex does the date arithmetic for day cells: a cell's calendar
// date is always its calendar's anchor (start) date plus the cell offset
// in whole days. Dates travel over the wire and through local storage in
// ISO "YYYY-MM-DD" form.
package datex

import (
	"fmt"
	"time"
)

// Layout is the wire format for dates.
const Layout = "2006-01-02"

// Resolve returns anchor shifted forward by offset days. Pure; the caller
// is responsible for keeping offset within the calendar's bounds.
func Resolve(anchor time.Time, offset int) time.Time {
	return anchor.AddDate(0, 0, offset)
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a YYYY-MM-DD string in UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
