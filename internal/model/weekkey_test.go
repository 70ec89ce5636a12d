package model

import (
	"testing"
	"time"
)

func TestWeekKeyForYearBoundaries(t *testing.T) {
	cases := []struct {
		date time.Time
		want WeekKey
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-W01"},  // Monday, week 1
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "2022-W52"},  // Sunday, prior year's last week
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "2025-W01"}, // Tuesday, next year's week 1
		{time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), "2026-W35"},
	}
	for _, tc := range cases {
		if got := WeekKeyFor(tc.date); got != tc.want {
			t.Fatalf("WeekKeyFor(%s) = %s, want %s", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestWeekKeyTimeIsMonday(t *testing.T) {
	for _, key := range []WeekKey{"2024-W01", "2022-W52", "2025-W01", "2003-W29"} {
		got := key.Time()
		if got.IsZero() {
			t.Fatalf("Time() zero for valid key %s", key)
		}
		if got.Weekday() != time.Monday {
			t.Fatalf("Time(%s) = %s, not a Monday", key, got.Format("2006-01-02"))
		}
		if WeekKeyFor(got) != key {
			t.Fatalf("forward round-trip broke: %s -> %s -> %s", key, got.Format("2006-01-02"), WeekKeyFor(got))
		}
	}
}

func TestWeekKeyRoundTripStaysInWeek(t *testing.T) {
	// Any date maps to a key whose Time() is the Monday of the same ISO week.
	start := time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day++ {
		d := start.AddDate(0, 0, day)
		monday := WeekKeyFor(d).Time()
		diff := int(d.Sub(monday).Hours() / 24)
		if diff < 0 || diff > 6 {
			t.Fatalf("date %s landed %d days from its week's Monday %s",
				d.Format("2006-01-02"), diff, monday.Format("2006-01-02"))
		}
	}
}

func TestWeekKeyMalformed(t *testing.T) {
	for _, key := range []WeekKey{"", "2024", "2024-05", "2024-W", "2024-Wxx", "2024-W00", "2024-W54", "abcd-W10"} {
		if key.IsValid() {
			t.Fatalf("key %q unexpectedly valid", key)
		}
		if !key.Time().IsZero() {
			t.Fatalf("Time(%q) should be zero", key)
		}
		if key.RangeLabel() != "" {
			t.Fatalf("RangeLabel(%q) should be empty", key)
		}
	}
}

func TestWeekKeyRangeLabel(t *testing.T) {
	if got := WeekKey("2024-W01").RangeLabel(); got != "Jan 1 - Jan 7" {
		t.Fatalf("unexpected range label: %q", got)
	}
}

func TestWeekKeyCompare(t *testing.T) {
	cases := []struct {
		a, b WeekKey
		want int
	}{
		{"2024-W01", "2024-W02", -1},
		{"2024-W10", "2024-W10", 0},
		{"2025-W01", "2024-W52", 1},
		{"bogus", "2024-W01", -1},
	}
	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Fatalf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
