package sso

import "time"

type Config struct {
	URL     string        `env:"SSO_URL,required"`              // URL is the endpoint credentials are verified against.
	Timeout time.Duration `env:"SSO_TIMEOUT" envDefault:"5s"`   // Timeout bounds the entire outbound call, connect and read.
}
