// Package scheduler runs the periodic data refresh.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a single job at a fixed interval. Start and Stop are
// idempotent so the admin endpoints can be called repeatedly.
type Scheduler struct {
	interval time.Duration
	job      func()

	mu      sync.Mutex
	c       *cron.Cron
	entryID cron.EntryID
	running bool
}

// New creates a Scheduler running job every interval. The job is not
// started until Start is called.
func New(interval time.Duration, job func()) *Scheduler {
	return &Scheduler{interval: interval, job: job}
}

// Start begins periodic execution. Calling Start on a running scheduler
// is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	id, err := c.AddFunc("@every "+s.interval.String(), s.job)
	if err != nil {
		return err
	}
	c.Start()

	s.c = c
	s.entryID = id
	s.running = true
	slog.Info("scheduler started", "interval", s.interval)
	return nil
}

// Stop halts periodic execution. A job already in flight runs to
// completion. Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.c.Stop()
	s.c = nil
	s.running = false
	slog.Info("scheduler stopped")
}

// Running reports whether the scheduler is currently active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the time of the next scheduled execution, or the zero
// time when the scheduler is stopped.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return time.Time{}
	}
	return s.c.Entry(s.entryID).Next
}
