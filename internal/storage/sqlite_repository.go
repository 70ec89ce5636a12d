package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadSettings reads the persisted snapshot and merges it over defaults via
// Normalize, so records written by older schema versions come back fully
// populated. Returns ErrNotFound when no snapshot has ever been saved.
func (r *SQLiteRepository) LoadSettings(ctx context.Context) (model.TimelineSettings, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT schema_version, birthday, lifespan_years,
		       past_color, present_color, future_color, filled_color,
		       auto_fill_enabled, auto_fill_weekday, manual_fill_enabled,
		       show_month_markers, show_decade_labels, marker_frequency,
		       zoom, week_start_monday
		FROM settings WHERE id = 1`)

	var sr SettingsRow
	var autoFill, manualFill, monthMarkers, decadeLabels, weekStart int
	err := row.Scan(&sr.SchemaVersion, &sr.Birthday, &sr.LifespanYears,
		&sr.PastColor, &sr.PresentColor, &sr.FutureColor, &sr.FilledColor,
		&autoFill, &sr.AutoFillWeekday, &manualFill,
		&monthMarkers, &decadeLabels, &sr.MarkerFrequency,
		&sr.Zoom, &weekStart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TimelineSettings{}, ErrNotFound
		}
		return model.TimelineSettings{}, err
	}

	birthday, err := time.Parse(sqliteTimeLayout, sr.Birthday)
	if err != nil {
		return model.TimelineSettings{}, fmt.Errorf("parse birthday: %w", err)
	}

	out := model.TimelineSettings{
		Birthday:          birthday,
		LifespanYears:     sr.LifespanYears,
		PastColor:         sr.PastColor,
		PresentColor:      sr.PresentColor,
		FutureColor:       sr.FutureColor,
		FilledColor:       sr.FilledColor,
		Events:            model.NewEventStore(),
		FilledWeeks:       make(model.WeekSet),
		AutoFillEnabled:   autoFill == 1,
		AutoFillWeekday:   time.Weekday(sr.AutoFillWeekday),
		ManualFillEnabled: manualFill == 1,
		ShowMonthMarkers:  monthMarkers == 1,
		ShowDecadeLabels:  decadeLabels == 1,
		MarkerFrequency:   model.MarkerFrequency(sr.MarkerFrequency),
		Zoom:              sr.Zoom,
		WeekStartMonday:   weekStart == 1,
	}

	if err := r.loadCategories(ctx, &out); err != nil {
		return model.TimelineSettings{}, err
	}
	if err := r.loadEvents(ctx, &out); err != nil {
		return model.TimelineSettings{}, err
	}
	if err := r.loadFilledWeeks(ctx, &out); err != nil {
		return model.TimelineSettings{}, err
	}

	out.Normalize()
	return out, nil
}

func (r *SQLiteRepository) loadCategories(ctx context.Context, out *model.TimelineSettings) error {
	rows, err := r.db.QueryContext(ctx, `SELECT name, color FROM categories ORDER BY position ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cr CategoryRow
		if err := rows.Scan(&cr.Name, &cr.Color); err != nil {
			return err
		}
		out.Events.Custom = append(out.Events.Custom, model.Category{Name: cr.Name, Color: cr.Color})
	}
	return rows.Err()
}

func (r *SQLiteRepository) loadEvents(ctx context.Context, out *model.TimelineSettings) error {
	rows, err := r.db.QueryContext(ctx, `SELECT category, payload FROM events ORDER BY category, position ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var er EventRow
		if err := rows.Scan(&er.Category, &er.Payload); err != nil {
			return err
		}
		event, err := model.ParseEvent(er.Payload)
		if err != nil {
			return fmt.Errorf("decode event %q: %w", er.Payload, err)
		}
		out.Events.Collections[er.Category] = append(out.Events.Collections[er.Category], event)
	}
	return rows.Err()
}

func (r *SQLiteRepository) loadFilledWeeks(ctx context.Context, out *model.TimelineSettings) error {
	rows, err := r.db.QueryContext(ctx, `SELECT week_key FROM filled_weeks`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return err
		}
		out.FilledWeeks.Add(model.WeekKey(key))
	}
	return rows.Err()
}

// SaveSettings replaces the stored snapshot in one transaction.
func (r *SQLiteRepository) SaveSettings(ctx context.Context, s model.TimelineSettings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (id, schema_version, birthday, lifespan_years,
			past_color, present_color, future_color, filled_color,
			auto_fill_enabled, auto_fill_weekday, manual_fill_enabled,
			show_month_markers, show_decade_labels, marker_frequency,
			zoom, week_start_monday)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			birthday = excluded.birthday,
			lifespan_years = excluded.lifespan_years,
			past_color = excluded.past_color,
			present_color = excluded.present_color,
			future_color = excluded.future_color,
			filled_color = excluded.filled_color,
			auto_fill_enabled = excluded.auto_fill_enabled,
			auto_fill_weekday = excluded.auto_fill_weekday,
			manual_fill_enabled = excluded.manual_fill_enabled,
			show_month_markers = excluded.show_month_markers,
			show_decade_labels = excluded.show_decade_labels,
			marker_frequency = excluded.marker_frequency,
			zoom = excluded.zoom,
			week_start_monday = excluded.week_start_monday`,
		model.SchemaVersion, s.Birthday.UTC().Format(sqliteTimeLayout), s.LifespanYears,
		s.PastColor, s.PresentColor, s.FutureColor, s.FilledColor,
		boolInt(s.AutoFillEnabled), int(s.AutoFillWeekday), boolInt(s.ManualFillEnabled),
		boolInt(s.ShowMonthMarkers), boolInt(s.ShowDecadeLabels), string(s.MarkerFrequency),
		s.Zoom, boolInt(s.WeekStartMonday),
	)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM filled_weeks`); err != nil {
		return err
	}

	for i, c := range s.Events.Custom {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (name, color, position) VALUES (?, ?, ?)`,
			c.Name, c.Color, i); err != nil {
			return err
		}
	}
	for _, category := range categoryNamesInOrder(s.Events) {
		for i, event := range s.Events.Collections[category] {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO events (category, payload, position) VALUES (?, ?, ?)`,
				category, event.Encode(), i); err != nil {
				return err
			}
		}
	}
	for _, key := range s.FilledWeeks.Sorted() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO filled_weeks (week_key) VALUES (?)`, string(key)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// categoryNamesInOrder lists collection keys deterministically: precedence
// order first, then any orphaned collections that survived a category
// removal in an older snapshot.
func categoryNamesInOrder(store model.EventStore) []string {
	names := make([]string, 0, len(store.Collections))
	seen := make(map[string]bool, len(store.Collections))
	for _, c := range store.Categories() {
		if _, ok := store.Collections[c.Name]; ok {
			names = append(names, c.Name)
			seen[c.Name] = true
		}
	}
	for _, key := range sortedKeys(store.Collections) {
		if !seen[key] {
			names = append(names, key)
		}
	}
	return names
}

func sortedKeys(m map[string][]model.Event) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
