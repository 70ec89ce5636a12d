package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeweeks/lifeweeks/internal/commands"
	"github.com/lifeweeks/lifeweeks/internal/model"
	"github.com/lifeweeks/lifeweeks/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	needPersist := false
	res, err := commands.Execute(cmd, commands.Handlers{
		Fill: func(a commands.FillArgs) (commands.Result, error) {
			if !m.Settings.ManualFillEnabled {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "manual fill is disabled"}
			}
			m.Settings.FilledWeeks.Add(a.Week)
			needPersist = true
			return commands.Result{Message: "filled " + string(a.Week)}, nil
		},
		Unfill: func(a commands.FillArgs) (commands.Result, error) {
			if !m.Settings.ManualFillEnabled {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "manual fill is disabled"}
			}
			m.Settings.FilledWeeks.Remove(a.Week)
			needPersist = true
			return commands.Result{Message: "unfilled " + string(a.Week)}, nil
		},
		Event: func(a commands.EventArgs) (commands.Result, error) {
			e := model.NewSingleEvent(a.Start, a.Description)
			if a.End != "" {
				e = model.NewRangeEvent(a.Start, a.End, a.Description)
			}
			if err := m.Settings.Events.AddEvent(a.Category, e); err != nil {
				return commands.Result{}, err
			}
			needPersist = true
			return commands.Result{Message: fmt.Sprintf("added %s event: %s", a.Category, a.Description)}, nil
		},
		Category: func(a commands.CategoryArgs) (commands.Result, error) {
			switch a.Action {
			case commands.CategoryAdd:
				if !views.ValidColor(a.Color) {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "not a hex color: " + a.Color}
				}
				if err := m.Settings.Events.AddCategory(a.Name, a.Color); err != nil {
					return commands.Result{}, err
				}
				needPersist = true
				return commands.Result{Message: "added category: " + a.Name}, nil
			case commands.CategoryRemove:
				if err := m.Settings.Events.RemoveCategory(a.Name); err != nil {
					return commands.Result{}, err
				}
				needPersist = true
				return commands.Result{Message: "removed category: " + a.Name}, nil
			case commands.CategoryRename:
				if err := m.Settings.Events.RenameCategory(a.Name, a.NewName); err != nil {
					return commands.Result{}, err
				}
				needPersist = true
				return commands.Result{Message: fmt.Sprintf("renamed category: %s -> %s", a.Name, a.NewName)}, nil
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "unknown category action"}
			}
		},
		Note: func(a commands.NoteArgs) (commands.Result, error) {
			path, err := m.Notes.CreateWeekNote(a.Week)
			if err != nil {
				return commands.Result{}, err
			}
			m.LastNote = path
			return commands.Result{Message: "note ready: " + path}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	m.Status = StatusBar{Text: res.Message}
	if needPersist {
		return m, m.persistCmd()
	}
	return m, nil
}
