package health

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs all checkers concurrently and reports the first failure.
func (s *service) Ready(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, ch := range s.checkers {
		g.Go(func() error {
			if err := ch.Check(ctx); err != nil {
				return fmt.Errorf("%s: %w", ch.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
