package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeweeks/lifeweeks/internal/autofill"
	"github.com/lifeweeks/lifeweeks/internal/grid"
	"github.com/lifeweeks/lifeweeks/internal/model"
	"github.com/lifeweeks/lifeweeks/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Runner != nil {
		return waitForAutoFillCmd(m.Runner.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}

		switch typed.String() {
		case ":", "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Timeline:
			m.CurrentView = ViewTimeline
			return m, nil
		case m.Keys.Events:
			m.CurrentView = ViewEvents
			m.EventCursor = 0
			return m, nil
		case m.Keys.Settings:
			m.CurrentView = ViewSettings
			m.SettingsCursor = 0
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewTimeline:
			return m.handleTimelineKey(typed)
		case ViewEvents:
			return m.handleEventsKey(typed)
		case ViewSettings:
			return m.handleSettingsKey(typed)
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case AutoFillTickMsg:
		return m.onAutoFillTick(typed.At)
	case SettingsSavedMsg:
		m.LastSavedAt = typed.At
		return m, nil
	case NoteCreatedMsg:
		m.LastNote = typed.Path
		m.Status = StatusBar{Text: "note ready: " + typed.Path}
		return m, nil
	}

	return m, nil
}

func (m Model) onAutoFillTick(at time.Time) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if key, ok := autofill.Apply(&m.Settings, at); ok {
		m.Status = StatusBar{Text: fmt.Sprintf("auto-filled week %s", key)}
		cmds = append(cmds, m.persistCmd())
	}
	if m.Runner != nil {
		cmds = append(cmds, waitForAutoFillCmd(m.Runner.C()))
	}
	return m, tea.Batch(cmds...)
}

// persistCmd saves a deep copy of the current settings so the snapshot on the
// wire cannot race later keystrokes.
func (m Model) persistCmd() tea.Cmd {
	if m.Repo == nil {
		return nil
	}
	repo := m.Repo
	snapshot := m.Settings.Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.SaveSettings(ctx, snapshot); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SettingsSavedMsg{At: time.Now().UTC()}
	}
}

func waitForAutoFillCmd(ch <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		at, ok := <-ch
		if !ok {
			return nil
		}
		return AutoFillTickMsg{At: at}
	}
}

func (m Model) View() string {
	now := m.now()
	age := model.FullWeekAge(m.Settings.Birthday, now)

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = "status: error: " + m.Status.Text
		} else {
			status = "status: " + m.Status.Text
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewTimeline:
		leftPane = m.renderTimelineView(now)
		rightPane = joinPanes(m.renderWeekDetail(now), m.renderPaletteIfActive(), m.renderHelpIfVisible())
	case ViewEvents:
		leftPane = m.renderEventsView()
		rightPane = joinPanes(m.renderLegendView(), m.renderPaletteIfActive(), m.renderHelpIfVisible())
	case ViewSettings:
		leftPane = m.renderSettingsView()
		rightPane = joinPanes(m.renderPaletteIfActive(), m.renderHelpIfVisible())
	}

	lived := clampInt(age, 0, m.Settings.TotalWeeks())
	return views.RenderApp(views.AppData{
		Header: fmt.Sprintf("lifeweeks | view: %s | week %d of %d (%.1f%%)",
			m.CurrentView, lived, m.Settings.TotalWeeks(),
			100*float64(lived)/float64(m.Settings.TotalWeeks())),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s timeline | %s events | %s settings | : cmd | %s help | %s quit",
			m.Keys.Timeline, m.Keys.Events, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderTimelineView(now time.Time) string {
	snapshot := m.Settings.Clone()
	return views.RenderTimeline(views.TimelineData{
		Rows:       grid.All(&snapshot, now),
		Settings:   &snapshot,
		Markers:    model.MonthMarkers(snapshot.Birthday, 1, snapshot.MarkerFrequency),
		CursorYear: m.Cursor.Year,
		CursorWeek: m.Cursor.Week,
	})
}

func (m Model) renderWeekDetail(now time.Time) string {
	cell := grid.Resolve(&m.Settings, m.Cursor.Year, m.Cursor.Week, now)
	data := views.WeekDetailData{
		Key:       cell.Key,
		DateRange: cell.Key.RangeLabel(),
		Age:       fmt.Sprintf("%dy %dw", m.Cursor.Year, m.Cursor.Week),
		Bucket:    string(cell.Bucket),
		Filled:    cell.Filled,
	}
	if cell.HasEvent() {
		data.Event = &views.EventItemData{
			Category:    cell.EventCategory,
			Color:       cell.EventColor,
			Description: cell.EventDescription,
		}
	}
	if m.LastNote != "" {
		data.NotePreview = views.RenderMarkdown("note: `"+m.LastNote+"`", m.NoteStyle)
	}
	return views.RenderWeekDetail(data)
}

func (m Model) renderEventsView() string {
	items := m.eventItems()
	data := views.EventPanelData{Selected: m.EventCursor}
	for _, it := range items {
		label := string(it.Event.Week)
		if it.Event.Kind == model.EventRange {
			label = fmt.Sprintf("%s..%s", it.Event.Start, it.Event.End)
		}
		data.Items = append(data.Items, views.EventItemData{
			Category:    it.Category.Name,
			Color:       it.Category.Color,
			WeekLabel:   label,
			Description: it.Event.Description,
		})
	}
	return views.RenderEventPanel(data)
}

func (m Model) renderLegendView() string {
	data := views.LegendData{
		PastColor:   m.Settings.PastColor,
		FilledColor: m.Settings.FilledColor,
	}
	for _, c := range m.Settings.Events.Categories() {
		data.Entries = append(data.Entries, views.LegendEntryData{Name: c.Name, Color: c.Color, BuiltIn: c.BuiltIn})
	}
	return views.RenderLegend(data)
}

func (m Model) renderSettingsView() string {
	return views.RenderSettingsPanel(views.SettingsPanelData{
		Birthday:        m.Settings.Birthday.Format("2006-01-02"),
		LifespanYears:   m.Settings.LifespanYears,
		AutoFill:        m.Settings.AutoFillEnabled,
		AutoFillWeekday: m.Settings.AutoFillWeekday.String(),
		ManualFill:      m.Settings.ManualFillEnabled,
		Markers:         string(m.Settings.MarkerFrequency),
		Zoom:            m.Settings.Zoom,
		Selected:        m.SettingsCursor,
	})
}

func (m Model) renderPaletteIfActive() string {
	if !m.Palette.Active {
		return ""
	}
	return "command:\n" + m.commandInput.View()
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := []string{"h/j/k/l move", "f toggle fill", "n week note"}
	switch m.CurrentView {
	case ViewEvents:
		bindings = []string{"j/k move", "enter event note", "d delete event"}
	case ViewSettings:
		bindings = []string{"j/k field", "h/l change", "enter save"}
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    bindings,
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewTimeline, ViewEvents, ViewSettings:
		return true
	default:
		return false
	}
}
