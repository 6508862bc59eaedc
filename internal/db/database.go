package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/calvinwijaya/three-card-poker-be/internal/game"
)

type Database struct {
	db *sql.DB
}

// SessionStats aggregates a session's settled rounds.
type SessionStats struct {
	SessionID    string    `json:"sessionId"`
	RoundsPlayed int       `json:"roundsPlayed"`
	RoundsWon    int       `json:"roundsWon"`
	RoundsFolded int       `json:"roundsFolded"`
	NetWinnings  int       `json:"netWinnings"`
	LastPlayed   time.Time `json:"lastPlayed"`
}

// NewDatabase opens (or creates) the sqlite database at path and
// prepares the schema.
func NewDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	// sqlite handles one writer at a time
	db.SetMaxOpenConns(1)

	if err := initTables(db); err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// initTables creates the necessary tables if they don't exist.
func initTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			ante INTEGER NOT NULL,
			pair_plus INTEGER NOT NULL,
			play INTEGER NOT NULL,
			player_hand TEXT NOT NULL,
			dealer_hand TEXT NOT NULL,
			player_hand_name TEXT NOT NULL,
			dealer_hand_name TEXT NOT NULL,
			winner INTEGER NOT NULL,
			folded INTEGER NOT NULL DEFAULT 0,
			winnings INTEGER NOT NULL,
			cash_after INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("error creating rounds table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds (session_id)`)
	if err != nil {
		return fmt.Errorf("error creating rounds index: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// SaveRound inserts a settled round.
func (d *Database) SaveRound(record *game.RoundRecord) error {
	_, err := d.db.Exec(`
		INSERT INTO rounds (
			id, session_id, ante, pair_plus, play,
			player_hand, dealer_hand, player_hand_name, dealer_hand_name,
			winner, folded, winnings, cash_after, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID, record.SessionID, record.Ante, record.PairPlus, record.Play,
		record.PlayerHand, record.DealerHand, record.PlayerHandName, record.DealerHandName,
		record.Winner, record.Folded, record.Winnings, record.CashAfter, record.CreatedAt,
	)
	return err
}

const roundColumns = `
	id, session_id, ante, pair_plus, play,
	player_hand, dealer_hand, player_hand_name, dealer_hand_name,
	winner, folded, winnings, cash_after, created_at`

func scanRound(row interface{ Scan(...any) error }) (*game.RoundRecord, error) {
	var record game.RoundRecord
	err := row.Scan(
		&record.ID, &record.SessionID, &record.Ante, &record.PairPlus, &record.Play,
		&record.PlayerHand, &record.DealerHand, &record.PlayerHandName, &record.DealerHandName,
		&record.Winner, &record.Folded, &record.Winnings, &record.CashAfter, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetRound retrieves a round by ID.
func (d *Database) GetRound(id string) (*game.RoundRecord, error) {
	row := d.db.QueryRow(`SELECT`+roundColumns+` FROM rounds WHERE id = ?`, id)
	record, err := scanRound(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("round not found")
		}
		return nil, err
	}
	return record, nil
}

// GetSessionRounds retrieves all rounds for a session, oldest first.
func (d *Database) GetSessionRounds(sessionID string) ([]*game.RoundRecord, error) {
	rows, err := d.db.Query(`
		SELECT`+roundColumns+` FROM rounds WHERE session_id = ? ORDER BY created_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRounds(rows)
}

// GetRecentRounds retrieves up to limit rounds, newest first.
func (d *Database) GetRecentRounds(limit int) ([]*game.RoundRecord, error) {
	rows, err := d.db.Query(`
		SELECT`+roundColumns+` FROM rounds ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRounds(rows)
}

func collectRounds(rows *sql.Rows) ([]*game.RoundRecord, error) {
	records := []*game.RoundRecord{}
	for rows.Next() {
		record, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetSessionStats aggregates a session's round history.
func (d *Database) GetSessionStats(sessionID string) (*SessionStats, error) {
	stats := SessionStats{SessionID: sessionID}

	err := d.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN folded THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(winnings), 0)
		FROM rounds WHERE session_id = ?
	`, sessionID).Scan(&stats.RoundsPlayed, &stats.RoundsWon, &stats.RoundsFolded, &stats.NetWinnings)
	if err != nil {
		return nil, err
	}

	if stats.RoundsPlayed > 0 {
		err = d.db.QueryRow(
			`SELECT created_at FROM rounds WHERE session_id = ? ORDER BY created_at DESC LIMIT 1`, sessionID,
		).Scan(&stats.LastPlayed)
		if err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
