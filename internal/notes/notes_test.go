package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

func TestWeekNoteContent(t *testing.T) {
	content, err := WeekNoteContent("2024-W05")
	if err != nil {
		t.Fatalf("week note content: %v", err)
	}
	want := "# Week 5, 2024\n\n## Reflections\n\n## Tasks\n\n## Notes\n"
	if content != want {
		t.Fatalf("unexpected content:\n%q\nwant:\n%q", content, want)
	}

	if _, err := WeekNoteContent("garbage"); err == nil {
		t.Fatalf("malformed key must fail")
	}
}

func TestEventNoteContent(t *testing.T) {
	single, err := EventNoteContent(model.NewSingleEvent("2024-W05", "Moved"), "Major Life")
	if err != nil {
		t.Fatalf("single content: %v", err)
	}
	if !strings.Contains(single, "# Event: Moved\n") ||
		!strings.Contains(single, "Date: 2024-01-29\n") ||
		!strings.Contains(single, "Type: Major Life\n") {
		t.Fatalf("unexpected single note:\n%s", single)
	}
	if strings.Contains(single, "Start Date") {
		t.Fatalf("single note must not carry range fields:\n%s", single)
	}

	ranged, err := EventNoteContent(model.NewRangeEvent("2024-W01", "2024-W03", "Trip"), "Travel")
	if err != nil {
		t.Fatalf("range content: %v", err)
	}
	if !strings.Contains(ranged, "Start Date: 2024-01-01\n") ||
		!strings.Contains(ranged, "End Date: 2024-01-21\n") {
		t.Fatalf("unexpected range note:\n%s", ranged)
	}
}

func TestWriterCreateWeekNote(t *testing.T) {
	dir := t.TempDir()
	w := Writer{Folder: filepath.Join(dir, "notes")}

	path, err := w.CreateWeekNote("2024-W05")
	if err != nil {
		t.Fatalf("create week note: %v", err)
	}
	if filepath.Base(path) != "2024-W05.md" {
		t.Fatalf("unexpected path: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Week 5, 2024") {
		t.Fatalf("unexpected note body: %q", data)
	}
}

func TestWriterDoesNotOverwrite(t *testing.T) {
	w := Writer{Folder: t.TempDir()}
	path, err := w.CreateWeekNote("2024-W05")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := os.WriteFile(path, []byte("user edits"), 0o644); err != nil {
		t.Fatalf("seed user edits: %v", err)
	}

	again, err := w.CreateWeekNote("2024-W05")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if again != path {
		t.Fatalf("path changed on second create: %s", again)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "user edits" {
		t.Fatalf("existing note was overwritten: %q", data)
	}
}

func TestEventNotePathSlug(t *testing.T) {
	path := EventNotePath("notes", "Trip: Japan / Tokyo leg")
	if filepath.Base(path) != "Trip-Japan-Tokyo-leg.md" {
		t.Fatalf("unexpected slug: %s", path)
	}
}
