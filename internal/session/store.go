package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store maps opaque session tokens to user IDs. It is injected into the
// request handlers rather than held as package-level state, and is safe
// for concurrent use.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]int64
}

func NewStore() *Store {
	return &Store{tokens: make(map[string]int64)}
}

// Create issues a fresh opaque token for the user and registers it.
func (s *Store) Create(userID int64) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()
	return token
}

// Lookup resolves a token to its user ID.
func (s *Store) Lookup(token string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.tokens[token]
	return userID, ok
}

// Revoke invalidates every token held by the user.
func (s *Store) Revoke(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, id := range s.tokens {
		if id == userID {
			delete(s.tokens, token)
		}
	}
}
