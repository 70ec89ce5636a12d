package model

import (
	"fmt"
	"time"
)

const week = 7 * 24 * time.Hour

// DecadeGap is the extra spacing unit inserted after every completed decade
// in YearPosition. Renderers must take horizontal placement from YearPosition
// only, so grid cells and the year rail cannot drift apart.
const DecadeGap = 3

// FullWeekAge returns the number of whole weeks elapsed between birthday and
// asOf. The result is negative when asOf precedes birthday; a pre-birth query
// is a legitimate degenerate case and resolves to "future" downstream.
func FullWeekAge(birthday, asOf time.Time) int {
	d := asOf.Sub(birthday)
	weeks := int(d / week)
	if d < 0 && d%week != 0 {
		weeks--
	}
	return weeks
}

// WeekKeysBetween enumerates the keys of every ISO week touched by the span
// from a to b. The arguments may be given in either order, both endpoints'
// weeks are always included, and the result contains no duplicates, so it
// always has at least one element.
func WeekKeysBetween(a, b time.Time) []WeekKey {
	start, end := a, b
	if end.Before(start) {
		start, end = end, start
	}

	keys := make([]WeekKey, 0, int(end.Sub(start)/week)+2)
	for cursor := start; !cursor.After(end); cursor = cursor.Add(week) {
		key := WeekKeyFor(cursor)
		if len(keys) == 0 || keys[len(keys)-1] != key {
			keys = append(keys, key)
		}
	}
	if last := WeekKeyFor(end); keys[len(keys)-1] != last {
		keys = append(keys, last)
	}
	return keys
}

// YearPosition computes the offset of a year row in layout units. Each
// completed decade contributes one DecadeGap in place of a regular cell gap,
// visually separating decades.
func YearPosition(yearIndex, cellSize, cellGap int) int {
	return yearIndex*(cellSize+cellGap) + (yearIndex/10)*(DecadeGap-cellGap)
}

// MarkerFrequency controls how many month markers the timeline shows.
type MarkerFrequency string

const (
	MarkerEveryMonth MarkerFrequency = "all"
	MarkerQuarterly  MarkerFrequency = "quarter"
	MarkerHalfYearly MarkerFrequency = "half-year"
	MarkerYearly     MarkerFrequency = "year"
)

func (f MarkerFrequency) IsValid() bool {
	switch f {
	case MarkerEveryMonth, MarkerQuarterly, MarkerHalfYearly, MarkerYearly:
		return true
	default:
		return false
	}
}

// MonthMarker is one tick on the timeline rail.
type MonthMarker struct {
	WeekIndex     int
	Label         string
	FullLabel     string
	IsFirstOfYear bool
	IsBirthMonth  bool
}

// MonthMarkers walks day by day from birthday to birthday+totalYears
// (exclusive) and emits one marker per calendar month that passes the
// frequency filter, positioned at floor(daysSinceBirth/7). January is always
// emitted regardless of frequency. The first day of each qualifying month
// wins; markers come back sorted by week index.
func MonthMarkers(birthday time.Time, totalYears int, freq MarkerFrequency) []MonthMarker {
	if !freq.IsValid() {
		freq = MarkerEveryMonth
	}
	end := birthday.AddDate(totalYears, 0, 0)
	markers := make([]MonthMarker, 0, totalYears*12)

	lastYear, lastMonth := 0, time.Month(0)
	for day := 0; ; day++ {
		d := birthday.AddDate(0, 0, day)
		if !d.Before(end) {
			break
		}
		y, m := d.Year(), d.Month()
		if y == lastYear && m == lastMonth {
			continue
		}
		lastYear, lastMonth = y, m
		if !freq.includes(m) {
			continue
		}
		markers = append(markers, MonthMarker{
			WeekIndex:     day / 7,
			Label:         m.String()[:3],
			FullLabel:     fmt.Sprintf("%s %d", m, y),
			IsFirstOfYear: m == time.January,
			IsBirthMonth:  m == birthday.Month(),
		})
	}
	return markers
}

func (f MarkerFrequency) includes(m time.Month) bool {
	if m == time.January {
		return true
	}
	switch f {
	case MarkerQuarterly:
		return int(m)%3 == 0
	case MarkerHalfYearly:
		return int(m)%6 == 0
	case MarkerYearly:
		return false
	default:
		return true
	}
}
