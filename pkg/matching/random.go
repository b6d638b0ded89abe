package matching

import (
	"math/rand/v2"
	"sync"
)

// RandomSource yields values in [0,1). *rand.Rand satisfies it but is not
// safe for concurrent use; wrap it with NewSeededSource when shared.
type RandomSource interface {
	Float64() float64
}

type runtimeSource struct{}

func (runtimeSource) Float64() float64 { return rand.Float64() }

// RuntimeSource draws from the runtime's concurrency-safe generator.
func RuntimeSource() RandomSource { return runtimeSource{} }

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// NewSeededSource returns a reproducible source safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
