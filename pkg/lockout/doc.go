// Package lockout tracks failed login attempts and temporarily locks out
// abusive keys.
//
// A key is an arbitrary string identity; the authentication pipeline
// tracks usernames and source IPs through the same tracker, each in its
// own namespace of keys. Once a key accumulates the configured number of
// consecutive failures it is locked for a fixed window measured from the
// first breach; further failures while locked do not extend the window.
// A successful login removes all state for the key. Expired locks are
// purged lazily on the next read, there is no background sweep.
//
// Two store implementations are provided: MemoryStore for single-process
// deployments and RedisStore for sharing lockout state across instances.
//
// # Usage
//
//	var cfg lockout.Config
//	config.MustLoad(&cfg)
//
//	tracker := lockout.NewTracker(lockout.NewMemoryStore(cfg), cfg)
//	router.Use(lockout.Middleware(tracker))
//
// The middleware short-circuits requests carrying Basic credentials for a
// locked username or IP with HTTP 429 before any credential check runs.
package lockout
