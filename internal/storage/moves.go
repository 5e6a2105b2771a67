package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubeanim"
)

// MoveRecord represents a committed move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	Seq       int
	TsMs      int64
	Notation  string
	Axis      string
	Slice     int
	Direction int
}

// Move converts the record back to an engine move.
func (r MoveRecord) Move() (cubeanim.Move, error) {
	return cubeanim.ParseMove(r.Notation)
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, seq, ts_ms, notation, axis, slice, direction)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// Create records a committed move and returns its ID.
func (r *MoveRepository) Create(sessionID string, seq int, tsMs int64, move cubeanim.Move) (int64, error) {
	result, err := r.db.Exec(insertMove,
		sessionID, seq, tsMs, move.Notation(), move.Axis.String(), move.Slice, move.Direction)

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch records multiple moves in a single transaction, numbered from
// startSeq.
func (r *MoveRepository) CreateBatch(sessionID string, startSeq int, tsMs int64, moves []cubeanim.Move) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(insertMove,
				sessionID, startSeq+i, tsMs, move.Notation(), move.Axis.String(), move.Slice, move.Direction)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startSeq+i, err)
			}
		}
		return nil
	})
}

// ListBySession retrieves all moves of a session in commit order.
func (r *MoveRepository) ListBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, seq, ts_ms, notation, axis, slice, direction
		FROM moves
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.Seq, &m.TsMs, &m.Notation, &m.Axis, &m.Slice, &m.Direction)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves in a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}
