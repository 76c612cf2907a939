package signup

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps accounts in process. Intended for tests and demos.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// NewMemoryStore creates an empty in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]Account)}
}

func (m *MemoryStore) Create(ctx context.Context, account *Account) error {
	email := strings.ToLower(account.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[email]; exists {
		return ErrEmailTaken
	}
	stored := *account
	stored.Email = email
	m.accounts[email] = stored
	return nil
}

func (m *MemoryStore) ByEmail(ctx context.Context, email string) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[strings.ToLower(email)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &account, nil
}
