package lockout

import "time"

type Config struct {
	Enabled      bool          `env:"LOCKOUT_ENABLED" envDefault:"true"`        // Enabled toggles failure tracking; disabled means nothing is ever locked.
	MaxAttempts  int           `env:"LOCKOUT_MAX_ATTEMPTS" envDefault:"5"`      // MaxAttempts is the number of consecutive failures before a key is locked.
	LockDuration time.Duration `env:"LOCKOUT_LOCK_DURATION" envDefault:"15m"`   // LockDuration is the fixed lock window measured from the first breach.
}
