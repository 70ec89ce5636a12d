package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lifeweeks/lifeweeks/internal/autofill"
	"github.com/lifeweeks/lifeweeks/internal/model"
	"github.com/lifeweeks/lifeweeks/internal/notes"
	"github.com/lifeweeks/lifeweeks/internal/storage"
)

type View string

const (
	ViewTimeline View = "Timeline"
	ViewEvents   View = "Events"
	ViewSettings View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Timeline string
	Events   string
	Settings string
	Help     string
	Quit     string
}

type CursorState struct {
	Year int
	Week int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the single bubbletea model. Settings is the live mutable snapshot;
// every mutation is followed by a persist command against Repo, so the
// database always mirrors the last accepted change.
type Model struct {
	CurrentView View
	Settings    model.TimelineSettings
	Cursor      CursorState

	EventCursor    int
	SettingsCursor int

	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	LastSavedAt time.Time
	LastNote    string

	Repo      storage.Repository
	Runner    *autofill.Runner
	Notes     notes.Writer
	NoteStyle string

	commandInput textinput.Model
	now          func() time.Time
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// AutoFillTickMsg is delivered when the cron runner fires. At carries the
// runner's fire time so the fill check is testable with a fixed clock.
type AutoFillTickMsg struct {
	At time.Time
}

type SettingsSavedMsg struct {
	At time.Time
}

type NoteCreatedMsg struct {
	Path string
}

func NewModel() Model {
	return NewModelWithSettings(model.DefaultSettings())
}

func NewModelWithSettings(s model.TimelineSettings) Model {
	s.Normalize()
	input := textinput.New()
	input.Placeholder = "fill 2024-W05 | event Travel 2024-W01 Trip | category add Hobbies #ffaa00"
	input.Prompt = ": "

	m := Model{
		CurrentView: ViewTimeline,
		Settings:    s,
		Keys: GlobalKeyMap{
			Timeline: "1",
			Events:   "2",
			Settings: "3",
			Help:     "?",
			Quit:     "q",
		},
		NoteStyle:    "dark",
		commandInput: input,
		now:          time.Now,
	}
	m.Cursor = m.presentCursor()
	return m
}

// NewModelWithRuntime wires the persistence, scheduling and notes
// collaborators in. Any of them may be nil; the corresponding feature
// degrades to in-memory behavior.
func NewModelWithRuntime(s model.TimelineSettings, repo storage.Repository, runner *autofill.Runner, writer notes.Writer, noteStyle string) Model {
	m := NewModelWithSettings(s)
	m.Repo = repo
	m.Runner = runner
	m.Notes = writer
	if noteStyle != "" {
		m.NoteStyle = noteStyle
	}
	return m
}

// presentCursor starts the cursor on the current week of life, or at the
// origin when the timeline has not started yet or is already over.
func (m Model) presentCursor() CursorState {
	age := model.FullWeekAge(m.Settings.Birthday, m.now())
	if age < 0 || age >= m.Settings.TotalWeeks() {
		return CursorState{}
	}
	return CursorState{Year: age / model.WeeksPerYear, Week: age % model.WeeksPerYear}
}

// cursorKey is the week key of the cell under the cursor.
func (m Model) cursorKey() model.WeekKey {
	weekIndex := m.Cursor.Year*model.WeeksPerYear + m.Cursor.Week
	return model.WeekKeyFor(m.Settings.Birthday.AddDate(0, 0, weekIndex*7))
}
