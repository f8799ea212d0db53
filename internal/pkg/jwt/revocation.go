package jwt

import (
	"context"
	"sync"
	"time"
)

// RevocationStore remembers revoked token ids for a limited time.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// MemoryRevocationStore keeps revoked ids in process memory. Entries are
// dropped lazily once expired.
type MemoryRevocationStore struct {
	revokedTokens map[string]time.Time
	mu            sync.RWMutex
	now           func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		revokedTokens: make(map[string]time.Time),
		now:           time.Now,
	}
}

func (m *MemoryRevocationStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, expiresAt := range m.revokedTokens {
		if !expiresAt.After(now) {
			delete(m.revokedTokens, id)
		}
	}
	m.revokedTokens[jti] = now.Add(ttl)
	return nil
}

func (m *MemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	expiresAt, revoked := m.revokedTokens[jti]
	return revoked && expiresAt.After(m.now()), nil
}
