package lockout

import (
	"context"
	"log/slog"
	"time"
)

// Tracker applies the lockout policy on top of a Store. It is safe for
// concurrent use by all in-flight requests.
//
// Store failures are handled fail-open: an unreachable store must not
// turn the lockout layer into an outage, so errors are logged and the
// affected call behaves as if no state existed.
type Tracker struct {
	store  Store
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets a custom logger for the tracker.
func WithLogger(logger *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithTrackerClock overrides the time source used to evaluate lock
// windows. Must match the store's clock; intended for tests.
func WithTrackerClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker creates a tracker enforcing cfg against the given store.
func NewTracker(store Store, cfg Config, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		store:  store,
		cfg:    cfg,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// RegisterFailure records a failed login attempt for key. No-op while
// the policy is disabled.
func (t *Tracker) RegisterFailure(ctx context.Context, key string) {
	if !t.cfg.Enabled {
		return
	}

	rec, err := t.store.Fail(ctx, key)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to record login failure", "key", key, "error", err)
		return
	}

	if rec.Locked(t.now()) {
		t.logger.WarnContext(ctx, "key locked: too many failed attempts",
			"key", key, "failed_attempts", rec.FailedAttempts)
	} else {
		t.logger.InfoContext(ctx, "failed login attempt",
			"key", key, "failed_attempts", rec.FailedAttempts)
	}
}

// RegisterSuccess removes all tracked state for key. Runs regardless of
// the enabled flag so stale state cannot outlive a policy toggle.
func (t *Tracker) RegisterSuccess(ctx context.Context, key string) {
	if err := t.store.Reset(ctx, key); err != nil {
		t.logger.ErrorContext(ctx, "failed to reset login state", "key", key, "error", err)
		return
	}
	t.logger.InfoContext(ctx, "successful login, counter reset", "key", key)
}

// Locked reports whether key is currently locked out.
func (t *Tracker) Locked(ctx context.Context, key string) bool {
	if !t.cfg.Enabled {
		return false
	}

	rec, ok, err := t.store.Get(ctx, key)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to read login state", "key", key, "error", err)
		return false
	}

	return ok && rec.Locked(t.now())
}

// RemainingLockTime returns the remaining lock window for key in whole
// minutes, rounded up so any positive remainder reports at least one
// minute. Returns 0 when key is not locked.
func (t *Tracker) RemainingLockTime(ctx context.Context, key string) int {
	rec, ok, err := t.store.Get(ctx, key)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to read login state", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	now := t.now()
	if !rec.Locked(now) {
		return 0
	}

	return int(rec.LockedUntil.Sub(now)/time.Minute) + 1
}

// FailedAttempts returns the current failure counter for key.
func (t *Tracker) FailedAttempts(ctx context.Context, key string) int {
	rec, _, err := t.store.Get(ctx, key)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to read login state", "key", key, "error", err)
		return 0
	}
	return rec.FailedAttempts
}
