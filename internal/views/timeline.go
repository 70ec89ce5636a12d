package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lifeweeks/lifeweeks/internal/grid"
	"github.com/lifeweeks/lifeweeks/internal/model"
)

// TimelineData is everything the timeline pane needs: resolved cells by
// [year][week], the settings snapshot they came from, markers for the side
// rail, and the cursor.
type TimelineData struct {
	Rows       [][]grid.Cell
	Settings   *model.TimelineSettings
	Markers    []model.MonthMarker
	CursorYear int
	CursorWeek int
}

const (
	cellGlyph       = "■"
	filledGlyph     = "▣"
	cursorStyleBold = true
)

// RenderTimeline draws the life grid: one column per year of life, one row
// per week of year, with the horizontal placement of every column taken from
// model.YearPosition so decades separate visually. The left rail carries
// month labels for the first year of life; the header carries decade ages.
func RenderTimeline(data TimelineData) string {
	s := data.Settings
	cellW := cellWidth(s.Zoom)
	railW := railWidth(s)

	var b strings.Builder
	if s.ShowDecadeLabels {
		b.WriteString(renderDecadeHeader(s, cellW, railW))
		b.WriteString("\n")
	}

	for week := 0; week < model.WeeksPerYear; week++ {
		b.WriteString(renderRail(data, week, railW))
		prevEnd := 0
		for year := 0; year < len(data.Rows); year++ {
			pos := model.YearPosition(year, cellW, 0)
			if pad := pos - prevEnd; pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			prevEnd = pos + cellW
			b.WriteString(renderCell(data, data.Rows[year][week], year, week, cellW))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func cellWidth(zoom float64) int {
	w := int(zoom + 0.5)
	if w < 1 {
		w = 1
	}
	return w
}

func railWidth(s *model.TimelineSettings) int {
	if s.ShowMonthMarkers {
		return 4
	}
	return 0
}

// renderRail labels the row with the month that starts there during the first
// year of life.
func renderRail(data TimelineData, week, width int) string {
	if width == 0 {
		return ""
	}
	label := ""
	for _, m := range data.Markers {
		if m.WeekIndex >= model.WeeksPerYear {
			break
		}
		if m.WeekIndex == week {
			label = m.Label
			break
		}
	}
	return fmt.Sprintf("%-*s", width, label)
}

func renderDecadeHeader(s *model.TimelineSettings, cellW, railW int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", railW))
	prevEnd := 0
	for year := 0; year < s.LifespanYears; year += 10 {
		pos := model.YearPosition(year, cellW, 0)
		if pad := pos - prevEnd; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		label := fmt.Sprintf("%d", year)
		b.WriteString(label)
		prevEnd = pos + len(label)
	}
	return b.String()
}

func renderCell(data TimelineData, c grid.Cell, year, week, cellW int) string {
	glyph := cellGlyph
	if c.Filled {
		glyph = filledGlyph
	}
	body := strings.Repeat(glyph, cellW)

	color := grid.BackgroundColor(data.Settings, c)
	if c.UpcomingHighlight {
		color = lighten(color)
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if c.UpcomingHighlight {
		style = style.Bold(cursorStyleBold)
	}
	if year == data.CursorYear && week == data.CursorWeek {
		style = style.Reverse(true)
	}
	return style.Render(body)
}

// lighten blends the color toward white for the upcoming-event highlight.
// Unparseable colors pass through untouched; bad user input must not panic a
// render frame.
func lighten(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white, _ := colorful.Hex("#ffffff")
	return c.BlendLab(white, 0.35).Hex()
}

// ValidColor reports whether a user-supplied category color parses as hex.
func ValidColor(hex string) bool {
	_, err := colorful.Hex(hex)
	return err == nil
}
