package timeutil

import (
	"strings"
	"time"

	// Embedded zone database so legacy aliases such as US/Pacific resolve on slim images.
	_ "time/tzdata"
)

const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// LocalLayout renders a localized start time, e.g. "2022-09-26 07:00 PM PDT".
	LocalLayout = "2006-01-02 03:04 PM MST"
)

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}

// ParseUTC parses an ISO-8601 timestamp such as "2022-09-27T02:00:00Z".
func ParseUTC(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Localize converts an ISO-8601 UTC timestamp into LocalLayout for the named timezone.
// It reports false when the timezone is unknown or the timestamp cannot be parsed.
func Localize(isoUTC, tz string) (string, bool) {
	loc := ResolveTimezone(tz)
	if loc == nil {
		return "", false
	}
	t, err := ParseUTC(isoUTC)
	if err != nil {
		return "", false
	}
	return t.In(loc).Format(LocalLayout), true
}

// LocalizePtr is Localize with a nil result standing in for "unavailable".
func LocalizePtr(isoUTC, tz string) *string {
	s, ok := Localize(isoUTC, tz)
	if !ok {
		return nil
	}
	return &s
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
