package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

const settingsFieldCount = 7

var markerCycle = []model.MarkerFrequency{
	model.MarkerEveryMonth,
	model.MarkerQuarterly,
	model.MarkerHalfYearly,
	model.MarkerYearly,
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k", "up":
		m.SettingsCursor = clampInt(m.SettingsCursor-1, 0, settingsFieldCount-1)
	case "j", "down":
		m.SettingsCursor = clampInt(m.SettingsCursor+1, 0, settingsFieldCount-1)
	case "h", "left":
		m.adjustSetting(-1)
	case "l", "right":
		m.adjustSetting(+1)
	case "enter":
		if err := m.Settings.Validate(); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "settings saved"}
		return m, m.persistCmd()
	}
	return m, nil
}

// adjustSetting nudges the selected field. The field order matches the
// settings panel layout.
func (m *Model) adjustSetting(delta int) {
	switch m.SettingsCursor {
	case 0:
		m.Settings.Birthday = m.Settings.Birthday.AddDate(delta, 0, 0)
	case 1:
		m.Settings.LifespanYears = clampInt(m.Settings.LifespanYears+delta, model.MinLifespanYears, model.MaxLifespanYears)
		m.Cursor.Year = clampInt(m.Cursor.Year, 0, m.Settings.LifespanYears-1)
	case 2:
		m.Settings.AutoFillEnabled = !m.Settings.AutoFillEnabled
	case 3:
		m.Settings.AutoFillWeekday = time.Weekday((int(m.Settings.AutoFillWeekday) + delta + 7) % 7)
	case 4:
		m.Settings.ManualFillEnabled = !m.Settings.ManualFillEnabled
	case 5:
		m.Settings.MarkerFrequency = cycleMarker(m.Settings.MarkerFrequency, delta)
	case 6:
		m.Settings.Zoom = clampFloat(m.Settings.Zoom+float64(delta)*0.5, model.MinZoom, model.MaxZoom)
	}
}

func cycleMarker(current model.MarkerFrequency, delta int) model.MarkerFrequency {
	at := 0
	for i, f := range markerCycle {
		if f == current {
			at = i
			break
		}
	}
	return markerCycle[(at+delta+len(markerCycle))%len(markerCycle)]
}
