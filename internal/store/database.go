package store

import (
	"github.com/calvinwijaya/three-card-poker-be/internal/db"
	"github.com/calvinwijaya/three-card-poker-be/internal/game"
)

// DatabaseStore is a database-backed implementation of round-history
// storage.
type DatabaseStore struct {
	db *db.Database
}

// NewDatabaseStore creates a store backed by the given database.
func NewDatabaseStore(database *db.Database) *DatabaseStore {
	return &DatabaseStore{db: database}
}

// SaveRound records a settled round in the database.
func (s *DatabaseStore) SaveRound(record *game.RoundRecord) error {
	return s.db.SaveRound(record)
}

// GetRound retrieves a round by ID.
func (s *DatabaseStore) GetRound(id string) (*game.RoundRecord, error) {
	return s.db.GetRound(id)
}

// GetSessionRounds retrieves all rounds for a session, oldest first.
func (s *DatabaseStore) GetSessionRounds(sessionID string) ([]*game.RoundRecord, error) {
	return s.db.GetSessionRounds(sessionID)
}

// GetRecentRounds retrieves up to limit rounds, newest first.
func (s *DatabaseStore) GetRecentRounds(limit int) ([]*game.RoundRecord, error) {
	return s.db.GetRecentRounds(limit)
}
