package lockout

import (
	"context"
	"time"
)

// Record is the tracked state for one key.
type Record struct {
	// FailedAttempts is the number of consecutive failures recorded.
	FailedAttempts int
	// LockedUntil is the end of the lock window; zero when not locked.
	LockedUntil time.Time
}

// Locked reports whether the record holds an active lock at the given time.
func (r Record) Locked(now time.Time) bool {
	return !r.LockedUntil.IsZero() && now.Before(r.LockedUntil)
}

// Store persists lockout records keyed by identity. All read-modify-write
// sequences on a single key must be atomic with respect to concurrent
// callers; concurrent failures for the same key must never lose an
// increment.
type Store interface {
	// Fail increments the failure counter for key and arms the lock once
	// the threshold is crossed. An already armed lock is never re-armed or
	// extended. Returns the updated record.
	Fail(ctx context.Context, key string) (Record, error)

	// Get returns the current record for key. Implementations purge
	// records whose lock window has expired and report them as absent.
	Get(ctx context.Context, key string) (Record, bool, error)

	// Reset removes all state for key.
	Reset(ctx context.Context, key string) error
}
