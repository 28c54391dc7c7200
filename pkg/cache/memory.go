package cache

import (
	"context"
	"sync"
	"time"
)

// sweepInterval bounds how often expired windows are evicted.
const sweepInterval = time.Minute

// MemoryCounter is a process-local Counter. Suitable for tests and
// single-instance deployments; multi-instance setups need the Redis
// implementation so windows are shared.
type MemoryCounter struct {
	mu        sync.Mutex
	entries   map[string]*memoryEntry
	nextSweep time.Time
}

type memoryEntry struct {
	count   int64
	expires time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		entries:   make(map[string]*memoryEntry),
		nextSweep: time.Now().Add(sweepInterval),
	}
}

func (m *MemoryCounter) Increment(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.sweep(now)

	entry, ok := m.entries[key]
	if !ok || now.After(entry.expires) {
		m.entries[key] = &memoryEntry{count: 1, expires: now.Add(ttl)}
		return 1, nil
	}

	entry.count++
	return entry.count, nil
}

// sweep drops expired windows so the map does not grow with every client
// address ever seen. Runs at most once per sweepInterval; callers hold mu.
func (m *MemoryCounter) sweep(now time.Time) {
	if now.Before(m.nextSweep) {
		return
	}
	for key, entry := range m.entries {
		if now.After(entry.expires) {
			delete(m.entries, key)
		}
	}
	m.nextSweep = now.Add(sweepInterval)
}

func (m *MemoryCounter) Ping(context.Context) error {
	return nil
}
