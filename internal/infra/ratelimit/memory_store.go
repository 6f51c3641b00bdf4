package ratelimit

import (
	"context"
	"sync"
	"time"

	"budget/internal/domain/service"
)

const memorySweepEvery = 1024

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// memoryStore keeps counters in process memory. Budgets are per instance.
type memoryStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
	ops     int
}

// NewMemoryStore returns a single-process fixed-window store.
func NewMemoryStore() service.RateLimitStore {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) *memoryStore {
	return &memoryStore{
		windows: make(map[string]*memoryWindow),
		now:     now,
	}
}

func (s *memoryStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.ops++
	if s.ops%memorySweepEvery == 0 {
		s.sweep(now)
	}

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++

	return w.count, w.resetAt, nil
}

func (s *memoryStore) Decrement(_ context.Context, key string, resetAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || w.count == 0 || !w.resetAt.Equal(resetAt) || !s.now().Before(w.resetAt) {
		return nil
	}
	w.count--

	return nil
}

// sweep drops elapsed windows so idle keys do not accumulate.
func (s *memoryStore) sweep(now time.Time) {
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
}
