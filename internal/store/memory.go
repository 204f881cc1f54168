package store

import (
	"sync"
	"time"

	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
)

// Result is the output of one completed pipeline cycle: the visualizations
// handed to sinks plus the matching report text.
type Result struct {
	Visualizations  []domain.ImpactVisualization
	Report          string
	TotalConsidered int
	GeneratedAt     time.Time
}

// MemoryStore is a concurrency-safe holder for the most recent pipeline
// result. Only the latest cycle is kept; historical results are not
// persisted.
type MemoryStore struct {
	mu     sync.RWMutex
	latest *Result
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetLatest replaces the stored result.
func (s *MemoryStore) SetLatest(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &r
}

// Latest returns the most recent result, or false if no cycle has
// completed yet.
func (s *MemoryStore) Latest() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return Result{}, false
	}
	return *s.latest, true
}
