// Package scheduler runs the background housekeeping of live game sessions.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"cashflow/internal/logger"
)

// Sweeper removes sessions idle for longer than the given duration and
// reports how many were removed.
type Sweeper interface {
	Sweep(idle time.Duration) int
	Len() int
}

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron    *cron.Cron
	Store   Sweeper
	Idle    time.Duration
	entryID cron.EntryID
}

// NewScheduler creates a Scheduler that evicts sessions from store after idle.
func NewScheduler(store Sweeper, idle time.Duration) *Scheduler {
	return &Scheduler{
		Cron:  cron.New(),
		Store: store,
		Idle:  idle,
	}
}

// Register schedules the session sweep with a standard cron spec or a
// descriptor such as "@every 10m".
func (s *Scheduler) Register(spec string) error {
	id, err := s.Cron.AddFunc(spec, s.SweepNow)
	if err != nil {
		return fmt.Errorf("register session sweep %q: %w", spec, err)
	}
	s.entryID = id
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.Get().Infow("scheduler started", "idle_timeout", s.Idle.String())
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	logger.Get().Info("scheduler stopped")
}

// Next returns when the sweep runs next. It is zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.Cron.Entry(s.entryID).Next
}

// SweepNow evicts idle sessions immediately.
func (s *Scheduler) SweepNow() {
	removed := s.Store.Sweep(s.Idle)
	if removed == 0 {
		return
	}
	logger.Get().Infow("idle sessions swept", "removed", removed, "remaining", s.Store.Len())
}
