package autofill

import (
	"testing"
	"time"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

func TestCheckDisabled(t *testing.T) {
	s := model.DefaultSettings()
	s.AutoFillEnabled = false
	monday := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	if _, ok := Check(&s, monday); ok {
		t.Fatalf("disabled auto-fill must never fire")
	}
}

func TestCheckWeekdayGate(t *testing.T) {
	s := model.DefaultSettings()
	s.AutoFillEnabled = true
	s.AutoFillWeekday = time.Monday

	tuesday := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	if _, ok := Check(&s, tuesday); ok {
		t.Fatalf("wrong weekday must not fire")
	}

	monday := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	key, ok := Check(&s, monday)
	if !ok || key != "2026-W07" {
		t.Fatalf("expected fill for 2026-W07, got %q ok=%v", key, ok)
	}
}

func TestApplyIdempotentWithinWeek(t *testing.T) {
	s := model.DefaultSettings()
	s.AutoFillEnabled = true
	s.AutoFillWeekday = time.Monday
	monday := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)

	key, ok := Apply(&s, monday)
	if !ok {
		t.Fatalf("first apply should fill")
	}
	if !s.FilledWeeks.Has(key) {
		t.Fatalf("key not recorded")
	}
	if _, ok := Apply(&s, monday.Add(2*time.Hour)); ok {
		t.Fatalf("second apply in the same week must be a no-op")
	}
	if len(s.FilledWeeks) != 1 {
		t.Fatalf("week filled more than once: %#v", s.FilledWeeks)
	}
}

func TestNewRunnerRejectsBadSchedule(t *testing.T) {
	if _, err := NewRunner("not a schedule"); err == nil {
		t.Fatalf("expected schedule parse error")
	}
}

func TestRunnerStartStop(t *testing.T) {
	r, err := NewRunner("@every 1h")
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	r.Start()
	r.Start() // second start is a no-op
	r.Stop()
	r.Stop() // second stop is a no-op

	if _, open := <-r.C(); open {
		t.Fatalf("channel must be closed after Stop")
	}
}
