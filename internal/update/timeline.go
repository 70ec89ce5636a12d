package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

func (m Model) handleTimelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.Cursor.Year = clampInt(m.Cursor.Year-1, 0, m.Settings.LifespanYears-1)
	case "l", "right":
		m.Cursor.Year = clampInt(m.Cursor.Year+1, 0, m.Settings.LifespanYears-1)
	case "k", "up":
		m.Cursor.Week = clampInt(m.Cursor.Week-1, 0, model.WeeksPerYear-1)
	case "j", "down":
		m.Cursor.Week = clampInt(m.Cursor.Week+1, 0, model.WeeksPerYear-1)
	case "g":
		m.Cursor = CursorState{}
	case "t":
		m.Cursor = m.presentCursor()
	case "f":
		return m.toggleFill(m.cursorKey())
	case "n":
		return m, m.createWeekNoteCmd(m.cursorKey())
	case "+", "=":
		m.Settings.Zoom = clampFloat(m.Settings.Zoom+0.5, model.MinZoom, model.MaxZoom)
		return m, m.persistCmd()
	case "-":
		m.Settings.Zoom = clampFloat(m.Settings.Zoom-0.5, model.MinZoom, model.MaxZoom)
		return m, m.persistCmd()
	}
	return m, nil
}

// toggleFill flips the filled marker for a week. Manual filling can be
// switched off entirely in settings; the auto-fill path does not come through
// here.
func (m Model) toggleFill(key model.WeekKey) (tea.Model, tea.Cmd) {
	if !m.Settings.ManualFillEnabled {
		m.Status = StatusBar{Text: "manual fill is disabled", IsError: true}
		return m, nil
	}
	if m.Settings.FilledWeeks.Has(key) {
		m.Settings.FilledWeeks.Remove(key)
		m.Status = StatusBar{Text: "unfilled " + string(key)}
	} else {
		m.Settings.FilledWeeks.Add(key)
		m.Status = StatusBar{Text: "filled " + string(key)}
	}
	return m, m.persistCmd()
}

func (m Model) createWeekNoteCmd(key model.WeekKey) tea.Cmd {
	writer := m.Notes
	return func() tea.Msg {
		path, err := writer.CreateWeekNote(key)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return NoteCreatedMsg{Path: path}
	}
}
