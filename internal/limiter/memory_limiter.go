package limiter

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count int
	start time.Time
}

// MemoryLimiter keeps fixed-window counters in process memory.
type MemoryLimiter struct {
	window  Window
	now     func() time.Time
	mu      sync.Mutex
	buckets map[string]*bucket
}

func NewMemoryLimiter(window Window) *MemoryLimiter {
	return &MemoryLimiter{
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) >= m.window.Duration {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	if b.count >= m.window.Limit {
		return false, nil
	}

	b.count++
	return true, nil
}
