package redis

import "errors"

var (
	ErrRedisNotReady                = errors.New("redis is not ready")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
