package authn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clinicflow/seckit/pkg/tenant"
)

// TenantAuthenticator decorates a base Authenticator with tenant
// membership validation. The base check runs first and its failures
// propagate unchanged; only on success is the request's tenant examined.
type TenantAuthenticator struct {
	base    Authenticator
	members MembershipStore
	logger  *slog.Logger
}

// TenantOption configures a TenantAuthenticator.
type TenantOption func(*TenantAuthenticator)

// WithTenantLogger sets a custom logger.
func WithTenantLogger(logger *slog.Logger) TenantOption {
	return func(a *TenantAuthenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewTenantAuthenticator composes tenant validation around base.
func NewTenantAuthenticator(base Authenticator, members MembershipStore, opts ...TenantOption) *TenantAuthenticator {
	a := &TenantAuthenticator{
		base:    base,
		members: members,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Authenticate runs the base credential check, then validates that the
// authenticated identity belongs to the tenant declared by the request.
// Both tenant failures wrap ErrInvalidCredentials, so a caller probing
// responses cannot distinguish them from a wrong password; the real
// cause is logged here.
func (a *TenantAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Identity, error) {
	identity, err := a.base.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		a.logger.WarnContext(ctx, "authenticated user rejected: no tenant declared", "username", identity.Username)
		return nil, ErrTenantNotSet
	}

	member, err := a.members.Member(ctx, identity.Username, tenantID)
	if err != nil {
		return nil, fmt.Errorf("authn: tenant membership lookup: %w", err)
	}
	if !member {
		a.logger.WarnContext(ctx, "authenticated user rejected: not a tenant member",
			"username", identity.Username, "tenant_id", tenantID)
		return nil, fmt.Errorf("%w: %s", ErrTenantAccessDenied, tenantID)
	}

	return identity, nil
}
