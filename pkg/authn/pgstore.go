package authn

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicflow/seckit/pkg/pg"
)

// PGStore implements CredentialStore and MembershipStore on PostgreSQL.
//
// Schema: users(username, password, enabled, tenant_id) and
// roles(username, role); see the migrations directory.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store backed by the given connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Lookup returns the stored credential and authorities for username.
func (s *PGStore) Lookup(ctx context.Context, username string) (*StoredCredential, error) {
	stored := &StoredCredential{}

	err := s.pool.QueryRow(ctx,
		`SELECT username, password, enabled FROM users WHERE username = $1`,
		username,
	).Scan(&stored.Username, &stored.PasswordHash, &stored.Enabled)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("authn: query user %q: %w", username, err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT role FROM roles WHERE username = $1`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("authn: query roles for %q: %w", username, err)
	}

	stored.Authorities, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("authn: collect roles for %q: %w", username, err)
	}

	return stored, nil
}

// Member reports whether username is registered under tenantID.
func (s *PGStore) Member(ctx context.Context, username, tenantID string) (bool, error) {
	var member bool

	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND tenant_id = $2)`,
		username, tenantID,
	).Scan(&member)
	if err != nil {
		return false, fmt.Errorf("authn: tenant membership for %q: %w", username, err)
	}

	return member, nil
}
