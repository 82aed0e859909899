package settlement

import (
	"context"
	"sync"
	"time"

	"tutor-booking/internal/pkg/clock"
)

// MemoryMarkers keeps processed direct-booking keys for the life of the process.
type MemoryMarkers struct {
	mu     sync.RWMutex
	marked map[string]time.Time
	clock  clock.Clock
}

func NewMemoryMarkers(clk clock.Clock) *MemoryMarkers {
	return &MemoryMarkers{marked: make(map[string]time.Time), clock: clk}
}

func (m *MemoryMarkers) IsProcessed(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.marked[key]
	return ok, nil
}

func (m *MemoryMarkers) MarkProcessed(_ context.Context, key string) error {
	m.mu.Lock()
	m.marked[key] = m.clock.Now()
	m.mu.Unlock()
	return nil
}
