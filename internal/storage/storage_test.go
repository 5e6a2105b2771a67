package storage

import (
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cubeanim"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != len(migrations) {
		t.Errorf("expected version %d, got %d", len(migrations), v)
	}

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
	v2, _ := db.CurrentVersion()
	if v2 != v {
		t.Errorf("version changed on re-run: %d -> %d", v, v2)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("apply", "")
	if err != nil {
		t.Fatal(err)
	}

	s, err := sessions.Get(id)
	if err != nil || s == nil {
		t.Fatalf("Get: %v %v", s, err)
	}
	if s.Source != "apply" || s.EndedAt != nil || s.Notes != nil || s.MoveCount != 0 {
		t.Errorf("unexpected new session: %+v", s)
	}

	if err := sessions.End(id); err != nil {
		t.Fatal(err)
	}
	s, _ = sessions.Get(id)
	if s.EndedAt == nil {
		t.Error("ended session should have EndedAt")
	}

	if err := sessions.End("missing"); err == nil {
		t.Error("ending an unknown session should fail")
	}

	missing, err := sessions.Get("missing")
	if err != nil || missing != nil {
		t.Errorf("unknown session: %v %v", missing, err)
	}
}

func TestMovesRoundTripInOrder(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("play", "warmup")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := moves.Create(id, 0, 10, cubeanim.R); err != nil {
		t.Fatal(err)
	}
	if err := moves.CreateBatch(id, 1, 20, []cubeanim.Move{cubeanim.U, cubeanim.RPrime, cubeanim.UPrime}); err != nil {
		t.Fatal(err)
	}

	count, err := moves.Count(id)
	if err != nil || count != 4 {
		t.Fatalf("Count: %d %v", count, err)
	}

	records, err := moves.ListBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	want := cubeanim.SexyMove
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, r := range records {
		if r.Seq != i {
			t.Errorf("record %d has seq %d", i, r.Seq)
		}
		m, err := r.Move()
		if err != nil {
			t.Errorf("record %d: %v", i, err)
			continue
		}
		if m != want[i] {
			t.Errorf("record %d: expected %s, got %s", i, want[i], m)
		}
		if r.Axis != want[i].Axis.String() || r.Slice != want[i].Slice || r.Direction != want[i].Direction {
			t.Errorf("record %d columns do not match %s: %+v", i, want[i], r)
		}
	}

	s, _ := sessions.Get(id)
	if s.MoveCount != 4 || s.Notes == nil || *s.Notes != "warmup" {
		t.Errorf("unexpected session summary: %+v", s)
	}
}

func TestDuplicateSeqRollsBackBatch(t *testing.T) {
	db := openTestDB(t)
	id, _ := NewSessionRepository(db).Create("apply", "")
	moves := NewMoveRepository(db)

	if _, err := moves.Create(id, 2, 0, cubeanim.F); err != nil {
		t.Fatal(err)
	}
	err := moves.CreateBatch(id, 0, 0, []cubeanim.Move{cubeanim.U, cubeanim.D, cubeanim.L})
	if err == nil {
		t.Fatal("batch colliding on seq 2 should fail")
	}

	count, _ := moves.Count(id)
	if count != 1 {
		t.Errorf("failed batch should roll back, have %d moves", count)
	}
}

func TestDeleteCascadesAndListOrder(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	first, _ := sessions.Create("apply", "")
	second, _ := sessions.Create("play", "")
	moves.Create(first, 0, 0, cubeanim.B)

	list, err := sessions.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].SessionID != second {
		t.Errorf("expected newest session first, got %+v", list)
	}

	if err := sessions.Delete(first); err != nil {
		t.Fatal(err)
	}
	count, _ := moves.Count(first)
	if count != 0 {
		t.Errorf("moves should be deleted with their session, have %d", count)
	}
}
