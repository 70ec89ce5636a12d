// Package grid resolves timeline cells: for one week position and a settings
// snapshot it decides the cell's temporal bucket, event overlay, filled state
// and upcoming highlight. Resolution is pure; the same inputs always produce
// the same descriptor.
package grid

import (
	"time"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

// Bucket classifies a week relative to the reference age.
type Bucket string

const (
	BucketPast    Bucket = "past"
	BucketPresent Bucket = "present"
	BucketFuture  Bucket = "future"
)

// UpcomingWindow bounds the highlight for imminent planned events. Six months
// approximated as 6*30 days, matching the persisted behavior.
const UpcomingWindow = 180 * 24 * time.Hour

// Cell is the plain descriptor a renderer consumes. No cross-cell state.
type Cell struct {
	Key               model.WeekKey
	WeekIndex         int
	Bucket            Bucket
	EventColor        string
	EventDescription  string
	EventCategory     string
	Filled            bool
	UpcomingHighlight bool
}

// HasEvent reports whether an event overlay matched this cell.
func (c Cell) HasEvent() bool {
	return c.EventCategory != ""
}

// Resolve computes the descriptor for the cell at yearOffset/weekOffset from
// birth. The week index is yearOffset*52+weekOffset; comparing it against the
// full-week age yields the bucket, then the event overlay (first matching
// category in precedence order), the filled overlay, and the upcoming
// highlight are layered on top.
func Resolve(s *model.TimelineSettings, yearOffset, weekOffset int, now time.Time) Cell {
	weekIndex := yearOffset*model.WeeksPerYear + weekOffset
	cellDate := s.Birthday.AddDate(0, 0, weekIndex*7)
	key := model.WeekKeyFor(cellDate)

	cell := Cell{Key: key, WeekIndex: weekIndex}

	age := model.FullWeekAge(s.Birthday, now)
	switch {
	case weekIndex < age:
		cell.Bucket = BucketPast
	case weekIndex == age:
		cell.Bucket = BucketPresent
	default:
		cell.Bucket = BucketFuture
	}

	if category, event, ok := s.Events.Resolve(key); ok {
		cell.EventColor = category.Color
		cell.EventDescription = event.Description
		cell.EventCategory = category.Name
	}

	// The filled marker applies either way; the filled background only when
	// no event color claimed the cell.
	cell.Filled = s.FilledWeeks.Has(key)

	if cell.HasEvent() {
		until := cellDate.Sub(now)
		if until > 0 && until < UpcomingWindow {
			cell.UpcomingHighlight = true
		}
	}
	return cell
}

// BackgroundColor picks the color a renderer should paint the cell with:
// event color first, then the filled indicator, then the bucket color.
func BackgroundColor(s *model.TimelineSettings, c Cell) string {
	if c.EventColor != "" {
		return c.EventColor
	}
	if c.Filled {
		return s.FilledColor
	}
	switch c.Bucket {
	case BucketPast:
		return s.PastColor
	case BucketPresent:
		return s.PresentColor
	default:
		return s.FutureColor
	}
}

// Year resolves one 52-cell row.
func Year(s *model.TimelineSettings, yearOffset int, now time.Time) []Cell {
	row := make([]Cell, model.WeeksPerYear)
	for w := 0; w < model.WeeksPerYear; w++ {
		row[w] = Resolve(s, yearOffset, w, now)
	}
	return row
}

// All resolves the full grid, one row per year of the configured lifespan.
func All(s *model.TimelineSettings, now time.Time) [][]Cell {
	rows := make([][]Cell, s.LifespanYears)
	for y := 0; y < s.LifespanYears; y++ {
		rows[y] = Year(s, y, now)
	}
	return rows
}
