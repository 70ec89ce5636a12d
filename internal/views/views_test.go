package views

import (
	"strings"
	"testing"
	"time"

	"github.com/lifeweeks/lifeweeks/internal/grid"
	"github.com/lifeweeks/lifeweeks/internal/model"
)

func timelineFixture(t *testing.T) (model.TimelineSettings, [][]grid.Cell) {
	t.Helper()
	s := model.DefaultSettings()
	now := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	return s, grid.All(&s, now)
}

func TestRenderTimelineRowCount(t *testing.T) {
	s, rows := timelineFixture(t)
	s.ShowDecadeLabels = false

	out := RenderTimeline(TimelineData{Rows: rows, Settings: &s})
	lines := strings.Split(out, "\n")
	if len(lines) != model.WeeksPerYear {
		t.Fatalf("expected %d rows, got %d", model.WeeksPerYear, len(lines))
	}
}

func TestRenderTimelineDecadeHeader(t *testing.T) {
	s, rows := timelineFixture(t)
	s.ShowDecadeLabels = true

	out := RenderTimeline(TimelineData{Rows: rows, Settings: &s})
	lines := strings.Split(out, "\n")
	if len(lines) != model.WeeksPerYear+1 {
		t.Fatalf("expected header plus %d rows, got %d", model.WeeksPerYear, len(lines))
	}
	if !strings.Contains(lines[0], "0") || !strings.Contains(lines[0], "80") {
		t.Fatalf("expected decade ages in header: %q", lines[0])
	}
}

func TestRenderTimelineMonthRail(t *testing.T) {
	s, rows := timelineFixture(t)
	s.ShowDecadeLabels = false
	s.ShowMonthMarkers = true
	markers := model.MonthMarkers(s.Birthday, 1, model.MarkerQuarterly)

	out := RenderTimeline(TimelineData{Rows: rows, Settings: &s, Markers: markers})
	if !strings.Contains(out, "Jan") {
		t.Fatalf("expected January on the rail")
	}
}

func TestCellWidthFollowsZoom(t *testing.T) {
	cases := []struct {
		zoom float64
		want int
	}{
		{0.5, 1},
		{1.0, 1},
		{1.5, 2},
		{3.0, 3},
	}
	for _, tc := range cases {
		if got := cellWidth(tc.zoom); got != tc.want {
			t.Fatalf("cellWidth(%v) = %d, want %d", tc.zoom, got, tc.want)
		}
	}
}

func TestLighten(t *testing.T) {
	out := lighten("#000000")
	if out == "#000000" {
		t.Fatal("expected blend toward white to change the color")
	}
	if lighten("nonsense") != "nonsense" {
		t.Fatal("expected unparseable color to pass through")
	}
}

func TestValidColor(t *testing.T) {
	if !ValidColor("#ffaa00") {
		t.Fatal("expected #ffaa00 to be valid")
	}
	if ValidColor("ffaa00") || ValidColor("red") {
		t.Fatal("expected non-hex values to be rejected")
	}
}

func TestRenderLegend(t *testing.T) {
	out := RenderLegend(LegendData{
		Entries: []LegendEntryData{
			{Name: "Travel", Color: "#2a9d8f", BuiltIn: true},
			{Name: "Hobbies", Color: "#ffaa00"},
		},
		PastColor:   "#6c757d",
		FilledColor: "#06d6a0",
	})
	if !strings.Contains(out, "Travel") || !strings.Contains(out, "Hobbies (custom)") {
		t.Fatalf("legend missing entries: %q", out)
	}
	if !strings.Contains(out, "weeks lived") || !strings.Contains(out, "filled weeks") {
		t.Fatalf("legend missing fixed rows: %q", out)
	}
}

func TestRenderEventPanel(t *testing.T) {
	empty := RenderEventPanel(EventPanelData{})
	if !strings.Contains(empty, "no events yet") {
		t.Fatalf("expected empty-state hint: %q", empty)
	}

	out := RenderEventPanel(EventPanelData{
		Items: []EventItemData{
			{Category: "Travel", Color: "#2a9d8f", WeekLabel: "2024-W01..2024-W03", Description: "Trip to Japan"},
		},
	})
	if !strings.Contains(out, "Trip to Japan") || !strings.Contains(out, "> ") {
		t.Fatalf("expected selected event row: %q", out)
	}
}

func TestRenderSettingsPanel(t *testing.T) {
	out := RenderSettingsPanel(SettingsPanelData{
		Birthday:        "1990-01-01",
		LifespanYears:   90,
		AutoFillWeekday: "Monday",
		Markers:         "year",
		Zoom:            1.0,
		Selected:        1,
	})
	if !strings.Contains(out, "90 years") || !strings.Contains(out, "> lifespan") {
		t.Fatalf("settings panel mangled: %q", out)
	}
}

func TestRenderWeekDetail(t *testing.T) {
	out := RenderWeekDetail(WeekDetailData{
		Key:       "2024-W05",
		DateRange: "Jan 29 - Feb 4",
		Age:       "34y 4w",
		Bucket:    "past",
		Event:     &EventItemData{Category: "Travel", Color: "#2a9d8f", Description: "Trip"},
		Filled:    true,
	})
	for _, want := range []string{"week 2024-W05", "Jan 29 - Feb 4", "Travel: Trip", "filled"} {
		if !strings.Contains(out, want) {
			t.Fatalf("week detail missing %q: %q", want, out)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if RenderMarkdown("", "dark") != "" {
		t.Fatal("expected empty output for empty input")
	}
	if RenderMarkdown("   \n", "dark") != "" {
		t.Fatal("expected whitespace-only input to render empty")
	}
}
