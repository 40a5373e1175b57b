package sso

import "errors"

var (
	// ErrServiceUnavailable is returned when the SSO service cannot be
	// reached or answers with an unexpected status. Distinct from a
	// credential failure so callers can fail closed or fall back.
	ErrServiceUnavailable = errors.New("sso service unavailable")

	// ErrUnexpected is returned for unclassified failures, such as a
	// response body that cannot be decoded.
	ErrUnexpected = errors.New("unexpected sso error")
)
