package settlement

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tutor-booking/internal/pkg/clock"
)

// LockStore is the in-process "currently settling" set keyed by idempotency key.
// A lock older than ttl is considered abandoned and removed by Sweep.
type LockStore struct {
	mu    sync.Mutex
	locks map[string]heldLock
	next  uint64
	clock clock.Clock
	ttl   time.Duration
}

type heldLock struct {
	acquired time.Time
	token    uint64
}

// LockToken identifies one acquisition. Release is a no-op once the lock was
// reaped and taken by another caller.
type LockToken uint64

func NewLockStore(clk clock.Clock, ttl time.Duration) *LockStore {
	return &LockStore{
		locks: make(map[string]heldLock),
		clock: clk,
		ttl:   ttl,
	}
}

// TryAcquire inserts key and reports whether the caller now owns it.
func (s *LockStore) TryAcquire(key string) (LockToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, held := s.locks[key]; held {
		return 0, false
	}
	s.next++
	s.locks[key] = heldLock{acquired: s.clock.Now(), token: s.next}
	return LockToken(s.next), true
}

// Release drops key only while it is still held under token.
func (s *LockStore) Release(key string, token LockToken) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	held, ok := s.locks[key]
	if !ok || held.token != uint64(token) {
		return false
	}
	delete(s.locks, key)
	return true
}

// Sweep drops locks acquired more than ttl ago and returns their keys.
func (s *LockStore) Sweep() []string {
	cutoff := s.clock.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	var reaped []string
	for key, held := range s.locks {
		if held.acquired.Before(cutoff) {
			delete(s.locks, key)
			reaped = append(reaped, key)
		}
	}
	return reaped
}

type LockInfo struct {
	Key        string
	AcquiredAt time.Time
	Age        time.Duration
}

func (s *LockStore) Snapshot() []LockInfo {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LockInfo, 0, len(s.locks))
	for key, held := range s.locks {
		out = append(out, LockInfo{Key: key, AcquiredAt: held.acquired, Age: now.Sub(held.acquired)})
	}
	return out
}

// RunReaper sweeps on every tick until ctx is done.
func (s *LockStore) RunReaper(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, key := range s.Sweep() {
				logger.Warn("reaped stale settlement lock", slog.String("key", key), slog.Duration("ttl", s.ttl))
			}
		}
	}
}
