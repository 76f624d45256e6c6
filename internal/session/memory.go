package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a process-local session store for tests and single-instance
// runs.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]uint
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]uint)}
}

func (s *MemoryStore) Issue(ctx context.Context, userID uint) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	s.users[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, token string) (uint, bool, error) {
	s.mu.RLock()
	userID, ok := s.users[token]
	s.mu.RUnlock()
	return userID, ok, nil
}

func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.users, token)
	s.mu.Unlock()
	return nil
}
