package lockout

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptsKeyPrefix = "lockout:attempts:"
	lockKeyPrefix     = "lockout:lock:"
)

// RedisStore implements Store on Redis so that lockout state is shared
// across instances. The failure counter lives under one key and the lock
// under another with a TTL equal to the lock window; Redis expiry
// replaces the lazy purge the in-memory store performs on read.
type RedisStore struct {
	client       redis.Cmdable
	maxAttempts  int
	lockDuration time.Duration
}

// NewRedisStore creates a Redis-backed store enforcing the given policy.
func NewRedisStore(client redis.Cmdable, cfg Config) *RedisStore {
	return &RedisStore{
		client:       client,
		maxAttempts:  cfg.MaxAttempts,
		lockDuration: cfg.LockDuration,
	}
}

// Fail increments the failure counter and arms the lock on breach. SETNX
// guarantees the lock window is set exactly once per breach; further
// failures while locked leave the TTL untouched.
func (rs *RedisStore) Fail(ctx context.Context, key string) (Record, error) {
	count, err := rs.client.Incr(ctx, attemptsKeyPrefix+key).Result()
	if err != nil {
		return Record{}, fmt.Errorf("lockout: increment failures for %q: %w", key, err)
	}

	if count >= int64(rs.maxAttempts) {
		armed, err := rs.client.SetNX(ctx, lockKeyPrefix+key, 1, rs.lockDuration).Result()
		if err != nil {
			return Record{}, fmt.Errorf("lockout: arm lock for %q: %w", key, err)
		}
		if armed {
			// Let the counter die with the lock so both vanish together.
			if err := rs.client.Expire(ctx, attemptsKeyPrefix+key, rs.lockDuration).Err(); err != nil {
				return Record{}, fmt.Errorf("lockout: expire counter for %q: %w", key, err)
			}
		}
	}

	rec := Record{FailedAttempts: int(count)}
	ttl, err := rs.client.PTTL(ctx, lockKeyPrefix+key).Result()
	if err != nil {
		return Record{}, fmt.Errorf("lockout: read lock ttl for %q: %w", key, err)
	}
	if ttl > 0 {
		rec.LockedUntil = time.Now().Add(ttl)
	}

	return rec, nil
}

// Get returns the current record for key.
func (rs *RedisStore) Get(ctx context.Context, key string) (Record, bool, error) {
	count, err := rs.client.Get(ctx, attemptsKeyPrefix+key).Int()
	if err != nil && err != redis.Nil {
		return Record{}, false, fmt.Errorf("lockout: read failures for %q: %w", key, err)
	}

	ttl, terr := rs.client.PTTL(ctx, lockKeyPrefix+key).Result()
	if terr != nil {
		return Record{}, false, fmt.Errorf("lockout: read lock ttl for %q: %w", key, terr)
	}

	if err == redis.Nil && ttl <= 0 {
		return Record{}, false, nil
	}

	rec := Record{FailedAttempts: count}
	if ttl > 0 {
		rec.LockedUntil = time.Now().Add(ttl)
	}

	return rec, true, nil
}

// Reset removes all state for key.
func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, attemptsKeyPrefix+key, lockKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("lockout: reset %q: %w", key, err)
	}
	return nil
}
