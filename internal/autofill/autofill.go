// Package autofill decides when the current week should be marked filled and
// drives that check on a schedule. The decision is pure and idempotent; the
// day-of-week gate gives at-most-once-per-week semantics no matter how often
// the runner fires, as long as it fires at least daily.
package autofill

import (
	"time"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

// Check reports whether today's week should be added to the filled set, and
// which key that is. It returns false when auto-fill is disabled, when now is
// not the configured weekday, or when the key is already present, so a second
// call in the same week after a successful fill returns false.
func Check(s *model.TimelineSettings, now time.Time) (model.WeekKey, bool) {
	if !s.AutoFillEnabled {
		return "", false
	}
	if now.Weekday() != s.AutoFillWeekday {
		return "", false
	}
	key := model.WeekKeyFor(now)
	if s.FilledWeeks.Has(key) {
		return "", false
	}
	return key, true
}

// Apply runs Check and records the key on success. The caller persists the
// settings afterwards.
func Apply(s *model.TimelineSettings, now time.Time) (model.WeekKey, bool) {
	key, ok := Check(s, now)
	if !ok {
		return "", false
	}
	s.FilledWeeks.Add(key)
	return key, true
}
