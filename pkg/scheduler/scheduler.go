// Package scheduler wires up the cron job that periodically reloads the
// catalog cache from the backing store.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

// Refresher reloads a cached catalog.
type Refresher interface {
	Refresh(ctx context.Context) ([]scholarship.Scholarship, error)
}

// Scheduler wraps robfig/cron and manages the refresh loop.
type Scheduler struct {
	cron   *cron.Cron
	target Refresher
	spec   string // cron spec, e.g. "@every 5m"
	log    *zap.Logger
}

func New(target Refresher, spec string, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		target: target,
		spec:   spec,
		log:    log,
	}
}

// Run registers the job, refreshes once, and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc(%q): %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info("cache refresh scheduled", zap.String("spec", s.spec))

	s.RunOnce(ctx)

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("cache refresh stopped")
	return nil
}

// RunOnce refreshes the cache and logs the outcome.
func (s *Scheduler) RunOnce(ctx context.Context) {
	items, err := s.target.Refresh(ctx)
	if err != nil {
		s.log.Warn("cache refresh failed", zap.Error(err))
		return
	}
	s.log.Debug("cache refreshed", zap.Int("count", len(items)))
}
