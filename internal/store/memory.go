package store

import (
	"errors"
	"sync"

	"github.com/calvinwijaya/three-card-poker-be/internal/game"
)

// MemoryStore is an in-memory implementation of round-history storage,
// used when the server runs without a database.
type MemoryStore struct {
	rounds   map[string]*game.RoundRecord
	sessions map[string][]*game.RoundRecord
	order    []*game.RoundRecord
	mu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rounds:   make(map[string]*game.RoundRecord),
		sessions: make(map[string][]*game.RoundRecord),
	}
}

// SaveRound records a settled round.
func (s *MemoryStore) SaveRound(record *game.RoundRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rounds[record.ID] = record
	s.sessions[record.SessionID] = append(s.sessions[record.SessionID], record)
	s.order = append(s.order, record)
	return nil
}

// GetRound retrieves a round by ID.
func (s *MemoryStore) GetRound(id string) (*game.RoundRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.rounds[id]
	if !exists {
		return nil, errors.New("round not found")
	}
	return record, nil
}

// GetSessionRounds retrieves all rounds for a session, oldest first.
func (s *MemoryStore) GetSessionRounds(sessionID string) ([]*game.RoundRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rounds, exists := s.sessions[sessionID]
	if !exists {
		return []*game.RoundRecord{}, nil
	}

	out := make([]*game.RoundRecord, len(rounds))
	copy(out, rounds)
	return out, nil
}

// GetRecentRounds retrieves up to limit rounds, newest first.
func (s *MemoryStore) GetRecentRounds(limit int) ([]*game.RoundRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}

	out := make([]*game.RoundRecord, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.order[i])
	}
	return out, nil
}
