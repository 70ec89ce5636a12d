package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekKey identifies one ISO-8601 week as "YYYY-W##". Weeks start on Monday
// and week 1 is the week containing the year's first Thursday.
type WeekKey string

// NewWeekKey builds a key from an ISO year and week number. The week number
// is zero-padded to two digits.
func NewWeekKey(year, week int) WeekKey {
	return WeekKey(fmt.Sprintf("%d-W%02d", year, week))
}

// WeekKeyFor returns the key of the ISO week containing t.
func WeekKeyFor(t time.Time) WeekKey {
	year, week := t.ISOWeek()
	return NewWeekKey(year, week)
}

// Parts splits the key into its ISO year and week number. ok is false for
// malformed keys (missing "W" separator, non-numeric fields, week outside
// 1..53); callers in rendering paths treat that as an empty cell, never an
// error.
func (k WeekKey) Parts() (year, week int, ok bool) {
	yearPart, weekPart, found := strings.Cut(string(k), "-W")
	if !found {
		return 0, 0, false
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, false
	}
	week, err = strconv.Atoi(weekPart)
	if err != nil || week < 1 || week > 53 {
		return 0, 0, false
	}
	return year, week, true
}

// IsValid reports whether the key parses as "YYYY-W##".
func (k WeekKey) IsValid() bool {
	_, _, ok := k.Parts()
	return ok
}

// Time returns the Monday of the key's ISO week in UTC. The conversion is a
// best-effort inverse of WeekKeyFor: any date inside the week maps forward to
// this key, but only the Monday maps back. Malformed keys yield the zero time.
func (k WeekKey) Time() time.Time {
	year, week, ok := k.Parts()
	if !ok {
		return time.Time{}
	}
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, 1-isoWeekday(jan4))
	return monday.AddDate(0, 0, (week-1)*7)
}

// RangeLabel formats the week's first and last day as "Jan 2 - Jan 8".
// Malformed keys yield an empty string.
func (k WeekKey) RangeLabel() string {
	start := k.Time()
	if start.IsZero() {
		return ""
	}
	end := start.AddDate(0, 0, 6)
	return start.Format("Jan 2") + " - " + end.Format("Jan 2")
}

// Compare orders keys by (year, week). Malformed keys sort before valid ones.
func (k WeekKey) Compare(other WeekKey) int {
	ky, kw, kok := k.Parts()
	oy, ow, ook := other.Parts()
	if !kok || !ook {
		return boolInt(kok) - boolInt(ook)
	}
	if ky != oy {
		return compareInt(ky, oy)
	}
	return compareInt(kw, ow)
}

// Before reports whether k's week precedes other's.
func (k WeekKey) Before(other WeekKey) bool {
	return k.Compare(other) < 0
}

// isoWeekday maps time.Weekday to ISO numbering (Monday=1 .. Sunday=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
