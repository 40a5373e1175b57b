package authn_test

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicflow/seckit/pkg/authn"
)

// fakeCredentialStore is an in-memory CredentialStore for tests.
type fakeCredentialStore struct {
	users map[string]*authn.StoredCredential
	err   error
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{users: make(map[string]*authn.StoredCredential)}
}

func (s *fakeCredentialStore) add(username, password string, enabled bool, authorities ...string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.users[username] = &authn.StoredCredential{
		Username:     username,
		PasswordHash: string(hash),
		Enabled:      enabled,
		Authorities:  authorities,
	}
}

func (s *fakeCredentialStore) Lookup(ctx context.Context, username string) (*authn.StoredCredential, error) {
	if s.err != nil {
		return nil, s.err
	}
	stored, ok := s.users[username]
	if !ok {
		return nil, authn.ErrUserNotFound
	}
	return stored, nil
}

// fakeMembershipStore maps usernames to their tenant.
type fakeMembershipStore struct {
	tenants map[string]string
	err     error
}

func (s *fakeMembershipStore) Member(ctx context.Context, username, tenantID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.tenants[username] == tenantID, nil
}

// fakeTracker records the keys passed to the lockout hooks.
type fakeTracker struct {
	mu        sync.Mutex
	failures  []string
	successes []string
}

func (t *fakeTracker) RegisterFailure(ctx context.Context, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures = append(t.failures, key)
}

func (t *fakeTracker) RegisterSuccess(ctx context.Context, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.successes = append(t.successes, key)
}
