package authn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clinicflow/seckit/pkg/sso"
)

const rolePrefix = "ROLE_"

// SSOAuthenticator verifies credentials against the external sign-on
// service and maps the returned roles to authorities.
type SSOAuthenticator struct {
	client *sso.Client
	logger *slog.Logger
}

// SSOOption configures an SSOAuthenticator.
type SSOOption func(*SSOAuthenticator)

// WithSSOLogger sets a custom logger.
func WithSSOLogger(logger *slog.Logger) SSOOption {
	return func(a *SSOAuthenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewSSOAuthenticator creates an authenticator delegating to the given client.
func NewSSOAuthenticator(client *sso.Client, opts ...SSOOption) *SSOAuthenticator {
	a := &SSOAuthenticator{
		client: client,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Authenticate delegates to the SSO service. An explicit rejection maps
// to ErrInvalidCredentials; an unreachable service maps to
// ErrServiceUnavailable so it is never counted as a bad login.
func (a *SSOAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Identity, error) {
	result, err := a.client.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, sso.ErrServiceUnavailable) {
			a.logger.WarnContext(ctx, "sso authentication unavailable", "error", err)
			return nil, errors.Join(ErrServiceUnavailable, err)
		}
		a.logger.ErrorContext(ctx, "unexpected sso authentication error", "error", err)
		return nil, fmt.Errorf("authn: sso authentication: %w", err)
	}

	if !result.Authenticated {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		Username:    creds.Username,
		Authorities: mapRolesToAuthorities(result.Roles),
	}, nil
}

// mapRolesToAuthorities normalizes external role names. Roles without
// the ROLE_ prefix are upper-cased and prefixed ("admin" becomes
// "ROLE_ADMIN"); roles already carrying the prefix pass through
// unchanged, case included.
func mapRolesToAuthorities(roles []string) []string {
	authorities := make([]string, 0, len(roles))
	for _, role := range roles {
		if !strings.HasPrefix(role, rolePrefix) {
			role = rolePrefix + strings.ToUpper(role)
		}
		authorities = append(authorities, role)
	}
	return authorities
}
