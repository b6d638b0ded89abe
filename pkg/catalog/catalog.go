// Package catalog holds the fixed source list of scholarships and an
// in-memory Repository used when no database is configured.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v4"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

//go:embed data/scholarships.yaml
var sourceList []byte

// Load decodes the embedded source list. Every record gets a stable id.
func Load() ([]scholarship.Scholarship, error) {
	return Decode(sourceList)
}

// Decode parses a YAML list of records.
func Decode(data []byte) ([]scholarship.Scholarship, error) {
	var items []scholarship.Scholarship
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range items {
		items[i] = items[i].WithID()
	}
	return items, nil
}

// MustLoad is Load for package initialization and tests.
func MustLoad() []scholarship.Scholarship {
	items, err := Load()
	if err != nil {
		panic(err)
	}
	return items
}

// Static is a Repository kept in memory.
type Static struct {
	mu    sync.RWMutex
	items []scholarship.Scholarship
}

// NewStatic returns a Static holding a copy of items.
func NewStatic(items []scholarship.Scholarship) *Static {
	return &Static{items: clone(items)}
}

func (s *Static) ListAll(ctx context.Context) ([]scholarship.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items), nil
}

func (s *Static) ReplaceAll(ctx context.Context, items []scholarship.Scholarship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = clone(items)
	return nil
}

func clone(items []scholarship.Scholarship) []scholarship.Scholarship {
	out := make([]scholarship.Scholarship, len(items))
	copy(out, items)
	return out
}
