package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

// eventRef points back into the store so list actions can mutate the right
// collection slot.
type eventRef struct {
	Category model.Category
	Index    int
	Event    model.Event
}

// eventItems flattens the store into display order: categories in precedence
// order, events in collection order within each.
func (m Model) eventItems() []eventRef {
	out := make([]eventRef, 0)
	for _, c := range m.Settings.Events.Categories() {
		for i, e := range m.Settings.Events.Collections[c.Name] {
			out = append(out, eventRef{Category: c, Index: i, Event: e})
		}
	}
	return out
}

func (m Model) handleEventsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.eventItems()

	switch msg.String() {
	case "k", "up":
		m.EventCursor = clampInt(m.EventCursor-1, 0, maxInt(len(items)-1, 0))
	case "j", "down":
		m.EventCursor = clampInt(m.EventCursor+1, 0, maxInt(len(items)-1, 0))
	case "enter":
		if m.EventCursor < len(items) {
			ref := items[m.EventCursor]
			return m, m.createEventNoteCmd(ref.Event, ref.Category.Name)
		}
	case "d":
		if m.EventCursor < len(items) {
			ref := items[m.EventCursor]
			if err := m.Settings.Events.RemoveEvent(ref.Category.Name, ref.Index); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
			m.EventCursor = clampInt(m.EventCursor, 0, maxInt(len(items)-2, 0))
			m.Status = StatusBar{Text: "deleted event: " + ref.Event.Description}
			return m, m.persistCmd()
		}
	}
	return m, nil
}

func (m Model) createEventNoteCmd(e model.Event, category string) tea.Cmd {
	writer := m.Notes
	return func() tea.Msg {
		path, err := writer.CreateEventNote(e, category)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return NoteCreatedMsg{Path: path}
	}
}
