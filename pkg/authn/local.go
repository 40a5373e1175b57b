package authn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// LocalAuthenticator verifies credentials against a CredentialStore
// using bcrypt.
type LocalAuthenticator struct {
	store  CredentialStore
	logger *slog.Logger
}

// LocalOption configures a LocalAuthenticator.
type LocalOption func(*LocalAuthenticator)

// WithLocalLogger sets a custom logger.
func WithLocalLogger(logger *slog.Logger) LocalOption {
	return func(a *LocalAuthenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewLocalAuthenticator creates an authenticator backed by the given store.
func NewLocalAuthenticator(store CredentialStore, opts ...LocalOption) *LocalAuthenticator {
	a := &LocalAuthenticator{
		store:  store,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Authenticate looks the user up and verifies the password hash. Unknown
// users, disabled accounts, and wrong passwords all collapse into
// ErrInvalidCredentials; the underlying cause is only logged.
func (a *LocalAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Identity, error) {
	stored, err := a.store.Lookup(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			a.logger.InfoContext(ctx, "login attempt for unknown user", "username", creds.Username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authn: credential lookup: %w", err)
	}

	if !stored.Enabled {
		a.logger.WarnContext(ctx, "login attempt for disabled account", "username", creds.Username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(creds.Password)); err != nil {
		a.logger.InfoContext(ctx, "password mismatch", "username", creds.Username)
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		Username:    stored.Username,
		Authorities: stored.Authorities,
	}, nil
}
