package lockout_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicflow/seckit/pkg/lockout"
)

func redisTestConfig() lockout.Config {
	return lockout.Config{
		Enabled:      true,
		MaxAttempts:  3,
		LockDuration: 15 * time.Minute,
	}
}

func TestRedisStoreFailBelowThreshold(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	store := lockout.NewRedisStore(client, redisTestConfig())

	mock.ExpectIncr("lockout:attempts:u1").SetVal(1)
	mock.ExpectPTTL("lockout:lock:u1").SetVal(-2 * time.Millisecond)

	rec, err := store.Fail(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.FailedAttempts)
	assert.True(t, rec.LockedUntil.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreFailArmsLockOnBreach(t *testing.T) {
	t.Parallel()

	cfg := redisTestConfig()
	client, mock := redismock.NewClientMock()
	store := lockout.NewRedisStore(client, cfg)

	mock.ExpectIncr("lockout:attempts:u1").SetVal(3)
	mock.ExpectSetNX("lockout:lock:u1", 1, cfg.LockDuration).SetVal(true)
	mock.ExpectExpire("lockout:attempts:u1", cfg.LockDuration).SetVal(true)
	mock.ExpectPTTL("lockout:lock:u1").SetVal(cfg.LockDuration)

	rec, err := store.Fail(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.FailedAttempts)
	assert.False(t, rec.LockedUntil.IsZero())
	assert.True(t, rec.Locked(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreFailWhileLockedDoesNotRearm(t *testing.T) {
	t.Parallel()

	cfg := redisTestConfig()
	client, mock := redismock.NewClientMock()
	store := lockout.NewRedisStore(client, cfg)

	// SETNX reports the lock already armed; the counter TTL stays untouched.
	mock.ExpectIncr("lockout:attempts:u1").SetVal(4)
	mock.ExpectSetNX("lockout:lock:u1", 1, cfg.LockDuration).SetVal(false)
	mock.ExpectPTTL("lockout:lock:u1").SetVal(5 * time.Minute)

	rec, err := store.Fail(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, rec.FailedAttempts)
	assert.True(t, rec.Locked(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGet(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	store := lockout.NewRedisStore(client, redisTestConfig())

	t.Run("absent key", func(t *testing.T) {
		mock.ExpectGet("lockout:attempts:u1").RedisNil()
		mock.ExpectPTTL("lockout:lock:u1").SetVal(-2 * time.Millisecond)

		_, ok, err := store.Get(context.Background(), "u1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("counted but unlocked", func(t *testing.T) {
		mock.ExpectGet("lockout:attempts:u1").SetVal("2")
		mock.ExpectPTTL("lockout:lock:u1").SetVal(-2 * time.Millisecond)

		rec, ok, err := store.Get(context.Background(), "u1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2, rec.FailedAttempts)
		assert.True(t, rec.LockedUntil.IsZero())
	})

	t.Run("locked", func(t *testing.T) {
		mock.ExpectGet("lockout:attempts:u1").SetVal("3")
		mock.ExpectPTTL("lockout:lock:u1").SetVal(10 * time.Minute)

		rec, ok, err := store.Get(context.Background(), "u1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, rec.Locked(time.Now()))
	})
}

func TestRedisStoreReset(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	store := lockout.NewRedisStore(client, redisTestConfig())

	mock.ExpectDel("lockout:attempts:u1", "lockout:lock:u1").SetVal(2)

	require.NoError(t, store.Reset(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
