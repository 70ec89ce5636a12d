// Package notes computes paths and templated markdown for week and event
// notes. Content generation is pure; the Writer does the file creation and
// never overwrites a note the user already has.
package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

var ErrMalformedKey = errors.New("notes: malformed week key")

// WeekNotePath places a week note at <folder>/<weekKey>.md. An empty folder
// means the current directory.
func WeekNotePath(folder string, key model.WeekKey) string {
	return filepath.Join(folder, string(key)+".md")
}

// WeekNoteContent renders the week note template.
func WeekNoteContent(key model.WeekKey) (string, error) {
	year, week, ok := key.Parts()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	return fmt.Sprintf("# Week %d, %d\n\n## Reflections\n\n## Tasks\n\n## Notes\n", week, year), nil
}

// EventNotePath places an event note at <folder>/<slugged description>.md.
func EventNotePath(folder, description string) string {
	return filepath.Join(folder, slug(description)+".md")
}

// EventNoteContent renders the event note template: a Date line for single
// events, Start/End Date lines for ranges.
func EventNoteContent(e model.Event, category string) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Event: %s\n\n", e.Description)
	if e.Kind == model.EventRange {
		fmt.Fprintf(&b, "Start Date: %s\n", e.Start.Time().Format("2006-01-02"))
		fmt.Fprintf(&b, "End Date: %s\n", e.End.Time().AddDate(0, 0, 6).Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "Date: %s\n", e.Week.Time().Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Type: %s\n\n## Notes\n\n", category)
	return b.String(), nil
}

// Writer creates note files under a folder.
type Writer struct {
	Folder string
}

// CreateWeekNote writes the week note unless it already exists, returning the
// path either way. An existing note is not an error; the caller just opens it.
func (w Writer) CreateWeekNote(key model.WeekKey) (string, error) {
	content, err := WeekNoteContent(key)
	if err != nil {
		return "", err
	}
	return w.create(WeekNotePath(w.Folder, key), content)
}

// CreateEventNote writes the event note unless it already exists.
func (w Writer) CreateEventNote(e model.Event, category string) (string, error) {
	content, err := EventNoteContent(e, category)
	if err != nil {
		return "", err
	}
	return w.create(EventNotePath(w.Folder, e.Description), content)
}

func (w Writer) create(path, content string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create notes folder: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, nil
		}
		return "", fmt.Errorf("create note: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	return path, nil
}

// slug flattens a description into a safe file name.
func slug(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		case r == ' ', r == '_', r == '/', r == ':':
			return '-'
		default:
			return -1
		}
	}, s)
	for strings.Contains(mapped, "--") {
		mapped = strings.ReplaceAll(mapped, "--", "-")
	}
	mapped = strings.Trim(mapped, "-")
	if mapped == "" {
		return "event"
	}
	return mapped
}
