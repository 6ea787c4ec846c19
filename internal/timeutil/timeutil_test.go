package timeutil

import (
	"regexp"
	"testing"
	"time"
)

var localPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2} (AM|PM) [A-Z+\-0-9]+$`)

func TestLocalizeUSPacificDaylight(t *testing.T) {
	got, ok := Localize("2022-09-27T02:00:00Z", "US/Pacific")
	if !ok {
		t.Fatal("expected localized timestamp")
	}
	if got != "2022-09-26 07:00 PM PDT" {
		t.Fatalf("unexpected localized value %q", got)
	}
}

func TestLocalizeStandardTimeAbbreviation(t *testing.T) {
	got, ok := Localize("2022-12-23T03:00:00Z", "America/Los_Angeles")
	if !ok || got != "2022-12-22 07:00 PM PST" {
		t.Fatalf("expected PST value, got %q (ok=%v)", got, ok)
	}
}

func TestLocalizeMatchesLayoutAcrossZones(t *testing.T) {
	for _, tz := range []string{"UTC", "America/New_York", "Europe/Helsinki", "US/Eastern"} {
		got, ok := Localize("2023-11-17T03:00:00Z", tz)
		if !ok {
			t.Fatalf("expected %s to resolve", tz)
		}
		if !localPattern.MatchString(got) {
			t.Fatalf("value %q for %s does not match layout", got, tz)
		}
	}
}

func TestLocalizeInvalidTimezone(t *testing.T) {
	if got, ok := Localize("2022-09-27T02:00:00Z", "invalid_timezone"); ok {
		t.Fatalf("expected failure for invalid timezone, got %q", got)
	}
	if got := LocalizePtr("2022-09-27T02:00:00Z", "invalid_timezone"); got != nil {
		t.Fatalf("expected nil pointer, got %q", *got)
	}
}

func TestLocalizeInvalidTimestamp(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "2022-13-40T99:00:00Z"} {
		if got, ok := Localize(raw, "UTC"); ok {
			t.Fatalf("expected failure for %q, got %q", raw, got)
		}
	}
}

func TestResolveTimezone(t *testing.T) {
	if loc := ResolveTimezone("UTC"); loc == nil || loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %v", loc)
	}
	if loc := ResolveTimezone("Not/AZone"); loc != nil {
		t.Fatalf("expected nil for invalid timezone, got %v", loc)
	}
	if loc := ResolveTimezone(""); loc != nil {
		t.Fatal("expected nil for empty timezone")
	}
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if FormatDate(d) != "2024-01-02" {
		t.Fatalf("unexpected round trip %s", FormatDate(d))
	}
	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Fatal("expected error for invalid layout")
	}
	if got := FormatDate(time.Date(2023, 5, 13, 23, 0, 0, 0, time.UTC)); got != "2023-05-13" {
		t.Fatalf("unexpected formatted date %s", got)
	}
}
