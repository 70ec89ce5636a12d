package model

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateCategory = errors.New("model: category name already exists")
	ErrUnknownCategory   = errors.New("model: unknown category")
	ErrBuiltInCategory   = errors.New("model: built-in categories cannot be changed")
)

// Category is a named, colored grouping of events. Built-in categories have a
// fixed identity and cannot be renamed or deleted.
type Category struct {
	Name    string
	Color   string
	BuiltIn bool
}

// The four built-in categories, in precedence order. Cell resolution probes
// these first, before any custom category.
var BuiltInCategories = []Category{
	{Name: "Major Life", Color: "#e63946", BuiltIn: true},
	{Name: "Travel", Color: "#2a9d8f", BuiltIn: true},
	{Name: "Relationship", Color: "#e76f51", BuiltIn: true},
	{Name: "Education/Career", Color: "#457b9d", BuiltIn: true},
}

// EventStore holds the categorized event collections: one ordered sequence of
// events per category name, plus the user-defined custom categories. Insertion
// order is irrelevant for correctness but preserved for determinism.
type EventStore struct {
	Custom      []Category
	Collections map[string][]Event
}

func NewEventStore() EventStore {
	return EventStore{
		Custom:      make([]Category, 0),
		Collections: make(map[string][]Event),
	}
}

// Categories returns every category in precedence order: built-ins first,
// then custom categories in their stored order.
func (s *EventStore) Categories() []Category {
	out := make([]Category, 0, len(BuiltInCategories)+len(s.Custom))
	out = append(out, BuiltInCategories...)
	out = append(out, s.Custom...)
	return out
}

// Lookup finds a category by name across built-in and custom sets.
// Names are case-sensitive.
func (s *EventStore) Lookup(name string) (Category, bool) {
	for _, c := range s.Categories() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// AddCategory registers a custom category. The name must not collide with any
// existing category, built-in or custom.
func (s *EventStore) AddCategory(name, color string) error {
	if _, exists := s.Lookup(name); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	s.Custom = append(s.Custom, Category{Name: name, Color: color})
	return nil
}

// RemoveCategory deletes a custom category and its event collection
// atomically. Built-in categories cannot be removed. This is destructive:
// the category's events are gone with it.
func (s *EventStore) RemoveCategory(name string) error {
	for _, c := range BuiltInCategories {
		if c.Name == name {
			return fmt.Errorf("%w: %q", ErrBuiltInCategory, name)
		}
	}
	for i, c := range s.Custom {
		if c.Name == name {
			s.Custom = append(s.Custom[:i], s.Custom[i+1:]...)
			delete(s.Collections, name)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// RenameCategory moves a custom category and its collection under a new name.
// It fails without touching any state when the new name collides with an
// existing category.
func (s *EventStore) RenameCategory(oldName, newName string) error {
	if _, exists := s.Lookup(newName); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, newName)
	}
	for _, c := range BuiltInCategories {
		if c.Name == oldName {
			return fmt.Errorf("%w: %q", ErrBuiltInCategory, oldName)
		}
	}
	for i, c := range s.Custom {
		if c.Name == oldName {
			s.Custom[i].Name = newName
			if events, ok := s.Collections[oldName]; ok {
				s.Collections[newName] = events
				delete(s.Collections, oldName)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, oldName)
}

// AddEvent appends an event to the category's collection, creating the
// collection on first use.
func (s *EventStore) AddEvent(category string, e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, exists := s.Lookup(category); !exists {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if s.Collections == nil {
		s.Collections = make(map[string][]Event)
	}
	s.Collections[category] = append(s.Collections[category], e)
	return nil
}

// RemoveEvent deletes the i-th event of a category's collection.
func (s *EventStore) RemoveEvent(category string, index int) error {
	events, ok := s.Collections[category]
	if !ok || index < 0 || index >= len(events) {
		return fmt.Errorf("%w: %q[%d]", ErrUnknownCategory, category, index)
	}
	s.Collections[category] = append(events[:index], events[index+1:]...)
	return nil
}

// FindMatch returns the first event in the category's collection covering the
// given week, in collection order.
func (s *EventStore) FindMatch(category string, key WeekKey) (Event, bool) {
	for _, e := range s.Collections[category] {
		if e.Matches(key) {
			return e, true
		}
	}
	return Event{}, false
}

// Resolve probes all categories in precedence order and returns the first
// matching event together with its category. Only one category's styling ever
// applies to a cell; first match wins by policy.
func (s *EventStore) Resolve(key WeekKey) (Category, Event, bool) {
	for _, c := range s.Categories() {
		if e, ok := s.FindMatch(c.Name, key); ok {
			return c, e, true
		}
	}
	return Category{}, Event{}, false
}

// Clone returns a deep copy, so a settings snapshot handed to the resolver
// cannot alias the store being mutated by the UI.
func (s *EventStore) Clone() EventStore {
	out := EventStore{
		Custom:      append([]Category(nil), s.Custom...),
		Collections: make(map[string][]Event, len(s.Collections)),
	}
	for name, events := range s.Collections {
		out.Collections[name] = append([]Event(nil), events...)
	}
	return out
}
