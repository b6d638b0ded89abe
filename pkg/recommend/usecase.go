package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/scholarship/pkg/browse"
	"github.com/artem13815/scholarship/pkg/matching"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

// ErrEmptyCatalog is returned when seeding with no records.
var ErrEmptyCatalog = errors.New("seed list is empty")

// UseCase covers catalog browsing, profile matching and seeding.
type UseCase interface {
	List(ctx context.Context, q browse.Query) ([]scholarship.Scholarship, error)
	Match(ctx context.Context, p scholarship.Profile) ([]scholarship.Scored, error)
	Seed(ctx context.Context) (int, error)
}

type service struct {
	repo   scholarship.Repository
	scorer *matching.Scorer
	source []scholarship.Scholarship
}

// NewService builds the use case. source is the fixed list Seed writes.
func NewService(repo scholarship.Repository, scorer *matching.Scorer, source []scholarship.Scholarship) UseCase {
	return &service{repo: repo, scorer: scorer, source: source}
}

func (s *service) List(ctx context.Context, q browse.Query) ([]scholarship.Scholarship, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}
	if items == nil {
		items = []scholarship.Scholarship{}
	}
	return browse.Apply(items, q), nil
}

func (s *service) Match(ctx context.Context, p scholarship.Profile) ([]scholarship.Scored, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return s.scorer.Match(items, p), nil
}

// Seed replaces the catalog with the source list. Running it twice leaves
// the same catalog behind.
func (s *service) Seed(ctx context.Context) (int, error) {
	if len(s.source) == 0 {
		return 0, ErrEmptyCatalog
	}
	items := make([]scholarship.Scholarship, len(s.source))
	for i, it := range s.source {
		items[i] = it.WithID()
	}
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return 0, fmt.Errorf("replace catalog: %w", err)
	}
	return len(items), nil
}
