package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout keeps a fixed width so timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Session is one run of the engine whose committed moves were journaled.
type Session struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	Source    string
	Notes     *string
	MoveCount int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(source, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, source, notes)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(timeLayout), source, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?
		WHERE session_id = ?
	`, endedAt.Format(timeLayout), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to end session %s: not found", sessionID)
	}

	return nil
}

const sessionColumns = `
	s.session_id, s.started_at, s.ended_at, s.source, s.notes,
	(SELECT COUNT(*) FROM moves m WHERE m.session_id = s.session_id)
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	if err := row.Scan(&s.SessionID, &startedAtStr, &endedAtStr, &s.Source, &s.Notes, &s.MoveCount); err != nil {
		return Session{}, err
	}

	s.StartedAt, _ = time.Parse(timeLayout, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeLayout, endedAtStr.String)
		s.EndedAt = &t
	}
	return s, nil
}

// Get retrieves a session by ID. It returns nil when no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions s WHERE s.session_id = ?`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions s
		ORDER BY s.started_at DESC, s.rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its moves (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
