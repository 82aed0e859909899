package reconcile

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Snapshot is the last attendee list seen for an event.
type Snapshot struct {
	EventID     string
	Calendar    string
	Attendees   []string
	LastUpdated time.Time
}

//go:generate mockgen -source=snapshot.go -destination=../../../tests/mock/reconcile/snapshot.go -package=reconcilemock

type SnapshotStore interface {
	Get(ctx context.Context, eventID string) (Snapshot, bool, error)
	Put(ctx context.Context, s Snapshot) error
	List(ctx context.Context) ([]Snapshot, error)
}

// MemorySnapshotStore is the default store. It starts empty on every process start.
type MemorySnapshotStore struct {
	mu    sync.RWMutex
	items map[string]Snapshot
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{items: make(map[string]Snapshot)}
}

func (m *MemorySnapshotStore) Get(_ context.Context, eventID string) (Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.items[eventID]
	return s, ok, nil
}

func (m *MemorySnapshotStore) Put(_ context.Context, s Snapshot) error {
	m.mu.Lock()
	m.items[s.EventID] = s
	m.mu.Unlock()
	return nil
}

func (m *MemorySnapshotStore) List(_ context.Context) ([]Snapshot, error) {
	m.mu.RLock()
	out := make([]Snapshot, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, s)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].EventID < out[j].EventID })
	return out, nil
}
