package lockout

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store using an in-process map.
//
// A single mutex guards the record map. Operations are short map lookups
// and integer updates, so one lock keeps every per-key sequence
// linearizable without the bookkeeping of per-key locking.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*Record

	maxAttempts  int
	lockDuration time.Duration

	now func() time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// WithCleanupInterval enables a background sweep of expired locks at the
// given interval. By default records are purged only lazily on read, so
// keys that are never read again keep their counters; the sweep bounds
// that growth. An interval of 0 disables it.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates an in-memory store enforcing the given policy.
func NewMemoryStore(cfg Config, opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		records:      make(map[string]*Record),
		maxAttempts:  cfg.MaxAttempts,
		lockDuration: cfg.LockDuration,
		now:          time.Now,
		stopCleanup:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// Fail increments the failure counter for key, arming the lock once the
// threshold is reached. The lock window is fixed from the first breach.
func (ms *MemoryStore) Fail(ctx context.Context, key string) (Record, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	rec, ok := ms.records[key]
	if !ok {
		rec = &Record{}
		ms.records[key] = rec
	}

	rec.FailedAttempts++
	if rec.FailedAttempts >= ms.maxAttempts && rec.LockedUntil.IsZero() {
		rec.LockedUntil = ms.now().Add(ms.lockDuration)
	}

	return *rec, nil
}

// Get returns the record for key, removing it first when its lock window
// has already expired.
func (ms *MemoryStore) Get(ctx context.Context, key string) (Record, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	rec, ok := ms.records[key]
	if !ok {
		return Record{}, false, nil
	}

	if !rec.LockedUntil.IsZero() && !ms.now().Before(rec.LockedUntil) {
		delete(ms.records, key)
		return Record{}, false, nil
	}

	return *rec, true, nil
}

// Reset removes all state for key.
func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.records, key)
	return nil
}

// Len reports the number of tracked keys. Intended for tests and
// operational introspection.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return len(ms.records)
}

// cleanup runs periodically to remove records with expired locks.
func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

// removeExpired drops records whose lock window has already passed,
// the same rule Get applies lazily.
func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, rec := range ms.records {
		if !rec.LockedUntil.IsZero() && !now.Before(rec.LockedUntil) {
			delete(ms.records, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times, from
// multiple goroutines.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() {
		close(ms.stopCleanup)
	})
}
