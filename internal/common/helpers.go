// Package common contains utilities shared across the project:
// money parsing/formatting, sentinel errors and time-zone helpers.
package common

import (
	"time"
)

// DefaultTimezone is the bookkeeping time zone. Due dates, report months
// and the reminder throttle all use this zone unless APP_TIMEZONE overrides.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// LoadZone loads the named time zone, falling back to a fixed UTC+7
// when tzdata is unavailable (scratch containers).
func LoadZone(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// FormatDate renders a date as the operator reads it: 15/09/2026.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}

// FormatDateTime renders a timestamp as 15/09/2026 14:30.
func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006 15:04")
}

// MonthKey returns the year-month key ("2026-09") of t in loc.
// Monthly report filtering and the baocao argument share this format.
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01")
}

// SameDay reports whether a and b fall on the same calendar day in loc.
// The reminder throttle is calendar-day granular, not 24-hour granular.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
