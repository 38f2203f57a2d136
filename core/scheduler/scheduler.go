package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// ErrDisabled is returned by Start when no refresh interval is configured.
var ErrDisabled = errors.New("scheduler disabled")

// Job is a unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler runs jobs periodically on top of gocron.
type Scheduler struct {
	cron   *gocron.Scheduler
	cfg    Config
	logger *zap.Logger
}

// New creates a scheduler running in UTC.
func New(cfg Config, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   gocron.NewScheduler(time.UTC),
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers job under name and starts the scheduler asynchronously.
// Overlapping scheduled runs are skipped; each run is bounded by JobTimeoutSeconds.
func (s *Scheduler) Start(ctx context.Context, name string, job Job) error {
	if !s.cfg.Enabled() {
		return ErrDisabled
	}

	timeout := time.Duration(s.cfg.JobTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	chain := s.cron.Every(s.cfg.RefreshIntervalMinutes).Minutes().SingletonMode()
	if !s.cfg.RefreshOnStart {
		chain = chain.WaitForSchedule()
	}

	_, err := chain.Tag(name).Do(func() {
		runCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		started := time.Now()
		s.logger.Info("Scheduled job started", zap.String("job", name))
		if err := job(runCtx); err != nil {
			s.logger.Error("Scheduled job failed", zap.String("job", name), zap.Error(err))
			return
		}
		s.logger.Info("Scheduled job finished", zap.String("job", name), zap.Duration("took", time.Since(started)))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.cron.StartAsync()
	s.logger.Info("Scheduler started",
		zap.String("job", name),
		zap.Int("interval_minutes", s.cfg.RefreshIntervalMinutes))
	return nil
}

// NextRun returns the next scheduled run time, or zero if nothing is scheduled.
func (s *Scheduler) NextRun() time.Time {
	_, next := s.cron.NextRun()
	return next
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
