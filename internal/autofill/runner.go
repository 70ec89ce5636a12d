package autofill

import (
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule re-checks hourly. The check tolerates being skipped or
// delayed, so any frequency of 24h or better works.
const DefaultSchedule = "@hourly"

var ErrInvalidSchedule = errors.New("autofill: invalid cron schedule")

// Runner emits a tick on its channel every time the cron schedule fires. The
// TUI loop consumes the ticks and runs Apply against the live settings; the
// runner itself holds no settings state.
type Runner struct {
	cron *cron.Cron
	out  chan time.Time

	mu      sync.Mutex
	started bool
	stopped bool
}

func NewRunner(schedule string) (*Runner, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	r := &Runner{
		cron: cron.New(),
		out:  make(chan time.Time, 1),
	}
	if _, err := r.cron.AddFunc(schedule, r.tick); err != nil {
		return nil, errors.Join(ErrInvalidSchedule, err)
	}
	return r, nil
}

// C delivers schedule ticks. A tick is dropped rather than queued when the
// consumer is behind; the next fire covers it.
func (r *Runner) C() <-chan time.Time {
	return r.out
}

func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.stopped {
		return
	}
	r.started = true
	r.cron.Start()
}

func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.started || r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()
	<-r.cron.Stop().Done()
	close(r.out)
}

func (r *Runner) tick() {
	select {
	case r.out <- time.Now().UTC():
	default:
	}
}
