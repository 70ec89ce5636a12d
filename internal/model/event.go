package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidEventKind = errors.New("model: invalid event kind")
	ErrMalformedEvent   = errors.New("model: malformed event record")
)

type EventKind string

const (
	EventSingle EventKind = "single"
	EventRange  EventKind = "range"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventSingle, EventRange:
		return true
	default:
		return false
	}
}

// Event is one annotated life event: either a single week or an inclusive
// week range, with a free-form description.
type Event struct {
	Kind        EventKind
	Week        WeekKey // single only
	Start       WeekKey // range only
	End         WeekKey // range only
	Description string
}

func NewSingleEvent(week WeekKey, description string) Event {
	return Event{Kind: EventSingle, Week: week, Description: description}
}

func NewRangeEvent(start, end WeekKey, description string) Event {
	return Event{Kind: EventRange, Start: start, End: end, Description: description}
}

func (e Event) Validate() error {
	if !e.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidEventKind, e.Kind)
	}
	if strings.TrimSpace(e.Description) == "" {
		return errors.New("model: event description is required")
	}
	switch e.Kind {
	case EventSingle:
		if !e.Week.IsValid() {
			return fmt.Errorf("%w: week %q", ErrMalformedEvent, e.Week)
		}
	case EventRange:
		if !e.Start.IsValid() {
			return fmt.Errorf("%w: start %q", ErrMalformedEvent, e.Start)
		}
		if !e.End.IsValid() {
			return fmt.Errorf("%w: end %q", ErrMalformedEvent, e.End)
		}
		if e.End.Before(e.Start) {
			return errors.New("model: event range ends before it starts")
		}
	}
	return nil
}

// Matches reports whether the event covers the given week. Single events
// require exact key equality; range events use inclusive membership ordered
// by (year, week).
func (e Event) Matches(key WeekKey) bool {
	switch e.Kind {
	case EventSingle:
		return e.Week == key
	case EventRange:
		return e.Start.Compare(key) <= 0 && key.Compare(e.End) <= 0
	default:
		return false
	}
}

// Encode serializes the event in the colon-delimited wire format:
// "<weekKey>:<description>" for single events and
// "<startWeekKey>:<endWeekKey>:<description>" for ranges. The format must
// stay byte-compatible with previously stored records.
func (e Event) Encode() string {
	if e.Kind == EventRange {
		return fmt.Sprintf("%s:%s:%s", e.Start, e.End, e.Description)
	}
	return fmt.Sprintf("%s:%s", e.Week, e.Description)
}

// ParseEvent decodes the wire format. A record is a range exactly when its
// first two colon-delimited fields both parse as week keys; everything after
// the key prefix is the description, so descriptions may themselves contain
// colons.
func ParseEvent(raw string) (Event, error) {
	fields := strings.Split(raw, ":")
	if len(fields) < 2 {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformedEvent, raw)
	}
	first := WeekKey(fields[0])
	if !first.IsValid() {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformedEvent, raw)
	}
	if len(fields) >= 3 {
		if second := WeekKey(fields[1]); second.IsValid() {
			e := NewRangeEvent(first, second, strings.Join(fields[2:], ":"))
			if err := e.Validate(); err != nil {
				return Event{}, err
			}
			return e, nil
		}
	}
	e := NewSingleEvent(first, strings.Join(fields[1:], ":"))
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}
