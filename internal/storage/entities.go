package storage

// SettingsRow is the single-row persisted form of the timeline settings.
// Events and filled weeks live in their own tables.
type SettingsRow struct {
	SchemaVersion     int
	Birthday          string // RFC3339
	LifespanYears     int
	PastColor         string
	PresentColor      string
	FutureColor       string
	FilledColor       string
	AutoFillEnabled   bool
	AutoFillWeekday   int
	ManualFillEnabled bool
	ShowMonthMarkers  bool
	ShowDecadeLabels  bool
	MarkerFrequency   string
	Zoom              float64
	WeekStartMonday   bool
}

// CategoryRow persists one custom category. Built-in categories are code,
// not data.
type CategoryRow struct {
	Name     string
	Color    string
	Position int
}

// EventRow persists one event in the colon-delimited wire format; the payload
// must stay byte-compatible for backward reading.
type EventRow struct {
	Category string
	Payload  string
	Position int
}
