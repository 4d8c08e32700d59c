package random

import (
	"math/rand/v2"
	"sync"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Source implements Random on math/rand/v2. A seeded Source replays the same
// sequence, so a seeded server awards the same bonus skills on every run.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Source drawing from the runtime's randomly seeded generator
func New() *Source {
	return &Source{}
}

// NewSeeded creates a deterministic Source
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a uniformly distributed int in [0, n). It returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.rng == nil {
		return rand.IntN(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Pick returns a uniformly chosen element of items, which must not be empty
func Pick[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}
