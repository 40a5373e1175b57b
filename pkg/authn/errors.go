package authn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is the generic bad-login failure. Counted
	// toward lockout and surfaced externally as a plain 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by credential stores for unknown users.
	ErrUserNotFound = errors.New("user not found")

	// ErrTenantNotSet means the credentials were valid but the request
	// declared no tenant. Wraps ErrInvalidCredentials so the outside
	// cannot tell it apart from a wrong password.
	ErrTenantNotSet = fmt.Errorf("%w: tenant is not set", ErrInvalidCredentials)

	// ErrTenantAccessDenied means the credentials were valid but the user
	// is not registered under the declared tenant. Wraps
	// ErrInvalidCredentials for the same reason as ErrTenantNotSet.
	ErrTenantAccessDenied = fmt.Errorf("%w: user does not have access to tenant", ErrInvalidCredentials)

	// ErrServiceUnavailable means the credential check could not be
	// performed, e.g. the SSO service is down. Never treated as a bad
	// login and never counted toward lockout.
	ErrServiceUnavailable = errors.New("authentication service unavailable")
)
