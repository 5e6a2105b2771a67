// Package recorder journals the moves an engine commits.
package recorder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/SeamusWaldron/cubeanim/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

var (
	ErrRecording    = errors.New("recorder: session already in progress")
	ErrNotRecording = errors.New("recorder: no session in progress")
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session writes every committed move of an engine to the journal.
type Session struct {
	logger *slog.Logger

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	seq       int

	// Repositories
	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	// Callbacks
	onMove func(cubeanim.Move)
}

// NewSession creates a new session manager. A nil logger discards output.
func NewSession(db *storage.DB, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		logger:      logger,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// SetMoveCallback sets a callback that fires after a move has been journaled.
func (s *Session) SetMoveCallback(cb func(cubeanim.Move)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// MoveCount returns how many moves this session has journaled.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Start opens a new journal session. source names the command that drives
// the engine.
func (s *Session) Start(source, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrRecording
	}

	id, err := s.sessionRepo.Create(source, notes)
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	s.sessionID = id
	s.startTime = time.Now()
	s.seq = 0
	s.state = StateRecording
	s.logger.Info("recorder: session started", "session", id, "source", source)

	return id, nil
}

// End closes the current session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded
	s.logger.Info("recorder: session ended", "session", s.sessionID, "moves", s.seq)
	return nil
}

// Record journals one committed move. Moves arriving outside a session are
// ignored.
func (s *Session) Record(move cubeanim.Move) error {
	s.mu.Lock()

	if s.state != StateRecording {
		s.mu.Unlock()
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if _, err := s.moveRepo.Create(s.sessionID, s.seq, tsMs, move); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.seq++
	cb := s.onMove
	s.mu.Unlock()

	if cb != nil {
		cb(move)
	}
	return nil
}

// Attach subscribes the session to the engine's completion notifications.
// It replaces any completion callback already set on the engine.
func (s *Session) Attach(e *cubeanim.Engine) {
	e.OnMoveComplete(func(m cubeanim.Move) {
		if err := s.Record(m); err != nil {
			s.logger.Error("recorder: journal write failed", "move", m.Notation(), "error", err)
		}
	})
}
