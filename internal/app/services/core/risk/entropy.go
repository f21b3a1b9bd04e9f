package risk

import (
	"math/rand"
	"sync"
	"time"
)

// lockedEntropySource wraps a seeded PRNG behind a mutex so a single source
// can serve concurrent requests.
type lockedEntropySource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEntropySource() *lockedEntropySource {
	return NewSeededEntropySource(time.Now().UnixNano())
}

func NewSeededEntropySource(seed int64) *lockedEntropySource {
	return &lockedEntropySource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *lockedEntropySource) Next() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// sequenceEntropySource replays a fixed list of draws and is used to make the
// geographic and AML checks deterministic in tests. Draws past the end of the
// sequence repeat the last value.
type sequenceEntropySource struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

func NewSequenceEntropySource(draws ...float64) *sequenceEntropySource {
	if len(draws) == 0 {
		draws = []float64{0}
	}
	return &sequenceEntropySource{draws: draws}
}

func (s *sequenceEntropySource) Next() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	draw := s.draws[s.next]
	s.next++
	return draw
}

// Reset rewinds the sequence so the same request can be re-evaluated with
// identical draws.
func (s *sequenceEntropySource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
}
