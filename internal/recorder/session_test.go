package recorder

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/SeamusWaldron/cubeanim/internal/storage"
)

func newTestSession(t *testing.T) (*Session, *storage.DB) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatal(err)
	}
	return NewSession(db, nil), db
}

func TestSessionStateTransitions(t *testing.T) {
	s, _ := newTestSession(t)

	if s.State() != StateIdle {
		t.Errorf("expected idle, got %s", s.State())
	}
	if err := s.End(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("End before Start: %v", err)
	}

	id, err := s.Start("apply", "")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" || s.SessionID() != id || s.State() != StateRecording {
		t.Errorf("unexpected session after start: %q %s", id, s.State())
	}
	if _, err := s.Start("apply", ""); !errors.Is(err, ErrRecording) {
		t.Errorf("second Start: %v", err)
	}

	if err := s.End(); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateEnded {
		t.Errorf("expected ended, got %s", s.State())
	}
}

func TestRecordOutsideSessionIsIgnored(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.Record(cubeanim.R); err != nil {
		t.Fatal(err)
	}
	if s.MoveCount() != 0 {
		t.Error("move recorded without a session")
	}
}

func TestAttachJournalsCommittedMoves(t *testing.T) {
	s, db := newTestSession(t)

	var seen []cubeanim.Move
	s.SetMoveCallback(func(m cubeanim.Move) { seen = append(seen, m) })

	id, err := s.Start("play", "")
	if err != nil {
		t.Fatal(err)
	}

	e := cubeanim.New(cubeanim.WithDuration(100 * time.Millisecond))
	s.Attach(e)
	e.Enqueue(cubeanim.SexyMove...)
	if err := e.Settle(16*time.Millisecond, 1000); err != nil {
		t.Fatal(err)
	}
	if err := s.End(); err != nil {
		t.Fatal(err)
	}

	if len(seen) != len(cubeanim.SexyMove) || s.MoveCount() != len(cubeanim.SexyMove) {
		t.Fatalf("callback saw %d moves, count %d", len(seen), s.MoveCount())
	}

	records, err := storage.NewMoveRepository(db).ListBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]cubeanim.Move, 0, len(records))
	for _, r := range records {
		m, err := r.Move()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, m)
	}
	if cubeanim.FormatMoves(got) != cubeanim.FormatMoves(cubeanim.SexyMove) {
		t.Errorf("journal holds %q", cubeanim.FormatMoves(got))
	}
}
