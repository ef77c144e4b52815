package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pruner deletes logged predictions older than cutoff.
type Pruner interface {
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	pruner  Pruner
	keep    time.Duration
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

func NewScheduler(pruner Pruner, days int, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		pruner:  pruner,
		keep:    time.Duration(days) * 24 * time.Hour,
		timeout: time.Minute,
		logger:  logger,
		now:     time.Now,
	}
}

// Start registers the prune job on a six-field cron spec and starts the scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { _, _ = s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule retention job %q: %w", spec, err)
	}

	s.cron.Start()
	s.logger.Info("retention scheduler started",
		zap.String("schedule", spec),
		zap.Duration("keep", s.keep),
	)
	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cutoff := s.now().Add(-s.keep)
	n, err := s.pruner.PruneOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Warn("prune prediction log", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, err
	}

	s.logger.Info("pruned prediction log", zap.Int64("rows", n), zap.Time("cutoff", cutoff))
	return n, nil
}
