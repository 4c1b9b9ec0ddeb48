// Package scheduler runs the generation pipeline once a day at a fixed UTC time.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/tilinna/clock"

	"newsrunner/internal/config"
	"newsrunner/internal/logger"
)

// Job is one full pipeline run.
type Job func(ctx context.Context) error

// Scheduler fires the job daily. Time is always read through the clock in
// the context, so tests drive it with a mock.
//
// Runs are serialized: a trigger arriving while a run is in flight is
// skipped, not queued. That is the only coordination between overlapping
// triggers; racing runners in other processes still contend on the push.
type Scheduler struct {
	hour   int
	minute int
	job    Job
	logger *logger.Logger
	mu     sync.Mutex
}

// New creates a scheduler from the configured daily time.
func New(cfg config.ScheduleConfig, job Job, log *logger.Logger) (*Scheduler, error) {
	hour, minute, err := cfg.TimeOfDay()
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		hour:   hour,
		minute: minute,
		job:    job,
		logger: log,
	}, nil
}

// NextRun returns the next scheduled fire time strictly after now.
func (s *Scheduler) NextRun(now time.Time) time.Time {
	now = now.UTC()

	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// Run blocks, firing the job at every scheduled time until ctx is done.
// A failed run is logged and the loop waits for the next tick; the next
// scheduled run is the recovery path.
func (s *Scheduler) Run(ctx context.Context) error {
	c := clock.FromContext(ctx)

	for {
		next := s.NextRun(c.Now())
		s.logger.Info("next run scheduled", "at", next.Format(time.RFC3339))

		timer := c.NewTimer(next.Sub(c.Now()))

		select {
		case <-ctx.Done():
			timer.Stop()

			return ctx.Err()
		case <-timer.C:
		}

		s.TriggerNow(ctx)
	}
}

// TriggerNow runs the job immediately if no run is in flight. It returns
// false when the trigger was skipped because a run was already active.
func (s *Scheduler) TriggerNow(ctx context.Context) bool {
	if !s.mu.TryLock() {
		s.logger.Warn("run already in progress, skipping trigger")

		return false
	}
	defer s.mu.Unlock()

	if err := s.job(ctx); err != nil {
		s.logger.Error("run failed", "error", err)
	}

	return true
}
