package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

type LegendEntryData struct {
	Name    string
	Color   string
	BuiltIn bool
}

type LegendData struct {
	Entries     []LegendEntryData
	PastColor   string
	FilledColor string
}

type EventItemData struct {
	Category    string
	Color       string
	WeekLabel   string
	DateLabel   string
	Description string
}

type EventPanelData struct {
	Items    []EventItemData
	Selected int
}

type SettingsPanelData struct {
	Birthday        string
	LifespanYears   int
	AutoFill        bool
	AutoFillWeekday string
	ManualFill      bool
	Markers         string
	Zoom            float64
	Selected        int
}

type WeekDetailData struct {
	Key         model.WeekKey
	DateRange   string
	Age         string
	Bucket      string
	Event       *EventItemData
	Filled      bool
	NotePreview string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
}

var swatchGlyph = "■ "

func RenderLegend(data LegendData) string {
	var b strings.Builder
	b.WriteString("legend:\n")
	for _, e := range data.Entries {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render(swatchGlyph)
		name := e.Name
		if !e.BuiltIn {
			name += " (custom)"
		}
		b.WriteString(sw + name + "\n")
	}
	past := lipgloss.NewStyle().Foreground(lipgloss.Color(data.PastColor)).Render(swatchGlyph)
	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(data.FilledColor)).Render(swatchGlyph)
	b.WriteString(past + "weeks lived\n")
	b.WriteString(filled + "filled weeks")
	return b.String()
}

func RenderEventPanel(data EventPanelData) string {
	var b strings.Builder
	b.WriteString("events:\n")
	b.WriteString("actions: [j/k]move [enter]note [d]delete [e]add\n")
	if len(data.Items) == 0 {
		b.WriteString("no events yet; add one with :event <category> <week> <description>")
		return b.String()
	}
	for i, item := range data.Items {
		marker := "  "
		if i == data.Selected {
			marker = "> "
		}
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render("■")
		b.WriteString(fmt.Sprintf("%s%s %-18s %s  %s\n", marker, sw, item.Category, item.WeekLabel, item.Description))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

var settingsFields = []string{
	"birthday", "lifespan", "auto-fill", "auto-fill weekday",
	"manual fill", "month markers", "zoom",
}

func RenderSettingsPanel(data SettingsPanelData) string {
	values := []string{
		data.Birthday,
		fmt.Sprintf("%d years", data.LifespanYears),
		onOff(data.AutoFill),
		data.AutoFillWeekday,
		onOff(data.ManualFill),
		data.Markers,
		fmt.Sprintf("%.1fx", data.Zoom),
	}

	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("actions: [j/k]move [h/l]change [enter]save [esc]back\n")
	for i, field := range settingsFields {
		marker := "  "
		if i == data.Selected {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-18s %s\n", marker, field, values[i]))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderWeekDetail(data WeekDetailData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("week %s\n", data.Key))
	b.WriteString(data.DateRange + "\n")
	b.WriteString(fmt.Sprintf("age %s, %s\n", data.Age, data.Bucket))
	if data.Event != nil {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(data.Event.Color)).Render("■")
		b.WriteString(fmt.Sprintf("%s %s: %s\n", sw, data.Event.Category, data.Event.Description))
	}
	if data.Filled {
		b.WriteString("filled\n")
	}
	if data.NotePreview != "" {
		b.WriteString("\n" + data.NotePreview)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help (" + data.CurrentView + "):\n")
	for _, line := range data.Bindings {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  : command palette   ? toggle help   q quit")
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
