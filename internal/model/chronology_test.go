package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFullWeekAge(t *testing.T) {
	cases := []struct {
		name     string
		birthday time.Time
		asOf     time.Time
		want     int
	}{
		{"same instant", date(2003, 7, 18), date(2003, 7, 18), 0},
		{"exactly one week", date(2000, 1, 1), date(2000, 1, 8), 1},
		{"six days is zero", date(2000, 1, 1), date(2000, 1, 7), 0},
		{"pre-birth is negative", date(2000, 1, 1), date(1999, 12, 31), -1},
		{"pre-birth whole weeks", date(2000, 1, 1), date(1999, 12, 18), -2},
	}
	for _, tc := range cases {
		if got := FullWeekAge(tc.birthday, tc.asOf); got != tc.want {
			t.Fatalf("%s: FullWeekAge = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestWeekKeysBetween(t *testing.T) {
	a := date(2024, 1, 1)
	b := date(2024, 1, 20)

	forward := WeekKeysBetween(a, b)
	if len(forward) != 3 {
		t.Fatalf("unexpected key count: %#v", forward)
	}
	want := []WeekKey{"2024-W01", "2024-W02", "2024-W03"}
	for i, key := range want {
		if forward[i] != key {
			t.Fatalf("keys[%d] = %s, want %s", i, forward[i], key)
		}
	}

	backward := WeekKeysBetween(b, a)
	if len(backward) != len(forward) {
		t.Fatalf("argument order changed result: %#v vs %#v", forward, backward)
	}
	for i := range forward {
		if forward[i] != backward[i] {
			t.Fatalf("argument order changed result: %#v vs %#v", forward, backward)
		}
	}
}

func TestWeekKeysBetweenSameDay(t *testing.T) {
	keys := WeekKeysBetween(date(2024, 3, 6), date(2024, 3, 6))
	if len(keys) != 1 || keys[0] != "2024-W10" {
		t.Fatalf("unexpected keys for single day: %#v", keys)
	}
}

func TestWeekKeysBetweenIncludesEndWeek(t *testing.T) {
	// The 7-day stride from Tue Jan 2 skips over Mon Jan 15; the end week
	// must still be present.
	keys := WeekKeysBetween(date(2024, 1, 2), date(2024, 1, 15))
	if keys[len(keys)-1] != WeekKey("2024-W03") {
		t.Fatalf("end week missing: %#v", keys)
	}
}

func TestYearPositionDecadeGap(t *testing.T) {
	const cellSize, cellGap = 16, 2
	within := YearPosition(9, cellSize, cellGap) - YearPosition(8, cellSize, cellGap)
	if within != cellSize+cellGap {
		t.Fatalf("in-decade step = %d, want %d", within, cellSize+cellGap)
	}
	crossing := YearPosition(10, cellSize, cellGap) - YearPosition(9, cellSize, cellGap)
	if crossing != cellSize+DecadeGap {
		t.Fatalf("decade step = %d, want %d", crossing, cellSize+DecadeGap)
	}
}

func TestMonthMarkersAlwaysIncludeJanuary(t *testing.T) {
	birthday := date(2000, 7, 18)
	for _, freq := range []MarkerFrequency{MarkerEveryMonth, MarkerQuarterly, MarkerHalfYearly, MarkerYearly} {
		markers := MonthMarkers(birthday, 3, freq)
		januaries := 0
		for _, m := range markers {
			if m.IsFirstOfYear {
				januaries++
			}
		}
		if januaries != 3 {
			t.Fatalf("freq %s: got %d January markers, want 3", freq, januaries)
		}
	}
}

func TestMonthMarkersYearlyOnlyJanuary(t *testing.T) {
	markers := MonthMarkers(date(2000, 3, 15), 2, MarkerYearly)
	for _, m := range markers {
		if !m.IsFirstOfYear {
			t.Fatalf("yearly frequency emitted non-January marker: %#v", m)
		}
	}
	if len(markers) != 2 {
		t.Fatalf("unexpected marker count: %#v", markers)
	}
}

func TestMonthMarkersQuarterly(t *testing.T) {
	markers := MonthMarkers(date(2000, 1, 1), 1, MarkerQuarterly)
	wantLabels := []string{"Jan", "Mar", "Jun", "Sep", "Dec"}
	if len(markers) != len(wantLabels) {
		t.Fatalf("unexpected markers: %#v", markers)
	}
	for i, m := range markers {
		if m.Label != wantLabels[i] {
			t.Fatalf("markers[%d].Label = %s, want %s", i, m.Label, wantLabels[i])
		}
	}
}

func TestMonthMarkersSortedAndUnique(t *testing.T) {
	markers := MonthMarkers(date(1995, 11, 3), 5, MarkerEveryMonth)
	seen := make(map[string]bool)
	last := -1
	for _, m := range markers {
		if m.WeekIndex < last {
			t.Fatalf("markers not sorted by week index: %#v", markers)
		}
		last = m.WeekIndex
		if seen[m.FullLabel] {
			t.Fatalf("duplicate marker for %s", m.FullLabel)
		}
		seen[m.FullLabel] = true
	}
	if markers[0].WeekIndex != 0 || !markers[0].IsBirthMonth {
		t.Fatalf("first marker should be the birth month at week 0: %#v", markers[0])
	}
}
