package model

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// SchemaVersion is bumped whenever the persisted settings shape changes.
// Loading merges older partial records over DefaultSettings once, producing a
// fully populated snapshot.
const SchemaVersion = 1

const (
	MinLifespanYears = 50
	MaxLifespanYears = 120
	MinZoom          = 0.5
	MaxZoom          = 3.0
	WeeksPerYear     = 52
)

var ErrInvalidLifespan = errors.New("model: lifespan out of range")

// WeekSet is a set of filled weeks. A key appears at most once.
type WeekSet map[WeekKey]struct{}

func (s WeekSet) Add(key WeekKey)      { s[key] = struct{}{} }
func (s WeekSet) Remove(key WeekKey)   { delete(s, key) }
func (s WeekSet) Has(key WeekKey) bool { _, ok := s[key]; return ok }

// Sorted returns the keys ordered by (year, week), for deterministic
// persistence and rendering.
func (s WeekSet) Sorted() []WeekKey {
	out := make([]WeekKey, 0, len(s))
	for key := range s {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// TimelineSettings is the aggregate the whole timeline renders from. It is
// passed explicitly as a snapshot into the pure resolution functions; every
// mutation goes through the update loop and is persisted immediately after.
type TimelineSettings struct {
	Birthday      time.Time
	LifespanYears int

	PastColor    string
	PresentColor string
	FutureColor  string
	FilledColor  string

	Events      EventStore
	FilledWeeks WeekSet

	AutoFillEnabled   bool
	AutoFillWeekday   time.Weekday
	ManualFillEnabled bool

	ShowMonthMarkers bool
	ShowDecadeLabels bool
	MarkerFrequency  MarkerFrequency

	Zoom            float64
	WeekStartMonday bool
}

func DefaultSettings() TimelineSettings {
	return TimelineSettings{
		Birthday:          time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		LifespanYears:     90,
		PastColor:         "#6c757d",
		PresentColor:      "#ffd166",
		FutureColor:       "#343a40",
		FilledColor:       "#06d6a0",
		Events:            NewEventStore(),
		FilledWeeks:       make(WeekSet),
		AutoFillEnabled:   false,
		AutoFillWeekday:   time.Monday,
		ManualFillEnabled: true,
		ShowMonthMarkers:  true,
		ShowDecadeLabels:  true,
		MarkerFrequency:   MarkerYearly,
		Zoom:              1.0,
		WeekStartMonday:   true,
	}
}

// Normalize fills in zero values and clamps bounds so that partially loaded
// snapshots from older schema versions still behave. It is applied once at
// load, not scattered through call sites.
func (s *TimelineSettings) Normalize() {
	def := DefaultSettings()
	if s.Birthday.IsZero() {
		s.Birthday = def.Birthday
	}
	if s.LifespanYears < MinLifespanYears {
		if s.LifespanYears == 0 {
			s.LifespanYears = def.LifespanYears
		} else {
			s.LifespanYears = MinLifespanYears
		}
	}
	if s.LifespanYears > MaxLifespanYears {
		s.LifespanYears = MaxLifespanYears
	}
	if s.PastColor == "" {
		s.PastColor = def.PastColor
	}
	if s.PresentColor == "" {
		s.PresentColor = def.PresentColor
	}
	if s.FutureColor == "" {
		s.FutureColor = def.FutureColor
	}
	if s.FilledColor == "" {
		s.FilledColor = def.FilledColor
	}
	if s.Events.Collections == nil {
		s.Events.Collections = make(map[string][]Event)
	}
	if s.Events.Custom == nil {
		s.Events.Custom = make([]Category, 0)
	}
	if s.FilledWeeks == nil {
		s.FilledWeeks = make(WeekSet)
	}
	if !s.MarkerFrequency.IsValid() {
		s.MarkerFrequency = def.MarkerFrequency
	}
	if s.Zoom < MinZoom || s.Zoom > MaxZoom {
		s.Zoom = def.Zoom
	}
}

func (s *TimelineSettings) Validate() error {
	if s.Birthday.IsZero() {
		return errors.New("model: birthday is required")
	}
	if s.LifespanYears < MinLifespanYears || s.LifespanYears > MaxLifespanYears {
		return fmt.Errorf("%w: %d", ErrInvalidLifespan, s.LifespanYears)
	}
	if !s.MarkerFrequency.IsValid() {
		return fmt.Errorf("model: invalid marker frequency %q", s.MarkerFrequency)
	}
	return nil
}

// Clone deep-copies the settings so the render path works from an immutable
// snapshot.
func (s TimelineSettings) Clone() TimelineSettings {
	out := s
	out.Events = s.Events.Clone()
	out.FilledWeeks = make(WeekSet, len(s.FilledWeeks))
	for key := range s.FilledWeeks {
		out.FilledWeeks[key] = struct{}{}
	}
	return out
}

// TotalWeeks is the number of cells on the grid.
func (s TimelineSettings) TotalWeeks() int {
	return s.LifespanYears * WeeksPerYear
}
