package signup

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/formkit/pkg/pg"
)

// PGStore persists accounts in Postgres. Schema lives in migrations/.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store over an established connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Create(ctx context.Context, account *Account) error {
	const query = `
		INSERT INTO accounts (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query,
		account.ID,
		strings.ToLower(account.Email),
		account.Name,
		account.PasswordHash,
		account.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKey(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("signup: create account: %w", err)
	}
	return nil
}

func (s *PGStore) ByEmail(ctx context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, email, name, password_hash, created_at
		FROM accounts
		WHERE email = $1`

	var account Account
	err := s.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("signup: account by email: %w", err)
	}
	return &account, nil
}

// interface guards
var (
	_ Store = (*PGStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
