// Package timezone resolves the business timezone that calendar days are
// interpreted in.
package timezone

import "time"

const DefaultTimezone = "Asia/Manila"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone, then UTC when no zone database
// is available.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// ParseDay returns midnight of a YYYY-MM-DD day in loc.
func ParseDay(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DayRange turns an inclusive from/to day pair into a half-open instant
// range. Empty or unparseable bounds come back nil.
func DayRange(from, to string, loc *time.Location) (start, end *time.Time) {
	if t, ok := ParseDay(from, loc); ok {
		start = &t
	}
	if t, ok := ParseDay(to, loc); ok {
		next := t.AddDate(0, 0, 1)
		end = &next
	}
	return start, end
}
