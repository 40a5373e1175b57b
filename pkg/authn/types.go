package authn

import "context"

// Credentials is an identity/secret pair extracted from an inbound
// request. Never persisted; only used as input to a credential check.
type Credentials struct {
	Username string
	Password string
}

// Identity is a successfully authenticated principal with its resolved
// authorities.
type Identity struct {
	Username    string
	Authorities []string
}

// HasAuthority reports whether the identity carries the given authority.
func (i *Identity) HasAuthority(authority string) bool {
	for _, a := range i.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// Authenticator verifies credentials and resolves the principal's
// authorities. Implementations return ErrInvalidCredentials (possibly
// wrapped) for any failure the caller should treat as a bad login, and
// ErrServiceUnavailable when verification could not be performed at all.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Identity, error)
}

// AuthenticatorFunc is an adapter to allow ordinary functions as Authenticators.
type AuthenticatorFunc func(ctx context.Context, creds Credentials) (*Identity, error)

// Authenticate calls the function.
func (f AuthenticatorFunc) Authenticate(ctx context.Context, creds Credentials) (*Identity, error) {
	return f(ctx, creds)
}

// StoredCredential is the locally stored view of a user account.
type StoredCredential struct {
	Username     string
	PasswordHash string
	Enabled      bool
	Authorities  []string
}

// CredentialStore looks up locally stored credentials.
type CredentialStore interface {
	// Lookup returns the stored credential for username.
	// Returns ErrUserNotFound when no such user exists.
	Lookup(ctx context.Context, username string) (*StoredCredential, error)
}

// MembershipStore answers tenant membership queries.
type MembershipStore interface {
	// Member reports whether username is registered under tenantID.
	Member(ctx context.Context, username, tenantID string) (bool, error)
}
