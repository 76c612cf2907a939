package signup

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Account is a registered user.
type Account struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Store persists accounts. Emails are unique; implementations normalize them
// to lower case.
type Store interface {
	// Create persists a new account, returning ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, account *Account) error

	// ByEmail returns the account registered under email, or
	// ErrAccountNotFound.
	ByEmail(ctx context.Context, email string) (*Account, error)
}
