package store

import "github.com/calvinwijaya/three-card-poker-be/internal/game"

// Store defines the interface for round-history storage.
type Store interface {
	// SaveRound records a settled round
	SaveRound(record *game.RoundRecord) error

	// GetRound retrieves a round by ID
	GetRound(id string) (*game.RoundRecord, error)

	// GetSessionRounds retrieves all rounds for a session, oldest first
	GetSessionRounds(sessionID string) ([]*game.RoundRecord, error)

	// GetRecentRounds retrieves up to limit rounds, newest first
	GetRecentRounds(limit int) ([]*game.RoundRecord, error)
}
