// Package config loads typed configuration structs from environment
// variables.
//
// Structs declare their surface with `env` tags (caarlos0/env); a .env
// file in the working directory is loaded once, if present, before the
// first parse. Every security-relevant package of this module defines
// its own Config struct next to the code it configures; this package
// only provides the loading mechanics.
//
//	type Config struct {
//		MaxAttempts int `env:"LOCKOUT_MAX_ATTEMPTS" envDefault:"5"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
