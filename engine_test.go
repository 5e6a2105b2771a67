package cubeanim

import (
	"errors"
	"math"
	"testing"
)

func TestEngineIgnoresUnknownTokens(t *testing.T) {
	e := New()
	for _, token := range []string{"", "X", "r", "R2", "U''"} {
		if e.Submit(token) {
			t.Errorf("%q should be ignored", token)
		}
	}
	if e.IsAnimating() || len(e.Pending()) != 0 {
		t.Error("ignored tokens must not reach the queue")
	}
}

func TestEngineRScenario(t *testing.T) {
	e := New(WithDuration(testDuration))

	completed := 0
	idle := 0
	e.OnMoveComplete(func(m Move) {
		if m != R {
			t.Errorf("completed %s", m)
		}
		completed++
	})
	e.OnIdle(func() { idle++ })

	if !e.Submit("R") {
		t.Fatal("R rejected")
	}

	transitions := 0
	prev := e.IsAnimating()
	if !prev {
		t.Fatal("engine should be animating right after Submit")
	}
	for i := 0; i < 100; i++ {
		e.Tick(frame)
		now := e.IsAnimating()
		if prev && !now {
			transitions++
		}
		if !prev && now {
			t.Errorf("frame %d: animating turned back on", i)
		}
		prev = now
	}

	if transitions != 1 || idle != 1 || completed != 1 {
		t.Errorf("transitions %d, idle callbacks %d, completions %d", transitions, idle, completed)
	}

	turn := QuarterTurn(AxisX, -1)
	for _, c := range e.Grid().Cubies() {
		if c.Home.X != 1 {
			continue
		}
		if c.Position != turn.Apply(c.Home) || c.Orientation != turn {
			t.Errorf("cubie %d not rotated -90 about X: %s", c.ID, c.Position)
		}
	}
}

func TestEngineUThenUPrimeRestores(t *testing.T) {
	e := New()
	e.Submit("U")
	e.Submit("U'")
	if len(e.Pending()) != 2 {
		t.Fatalf("expected both moves queued, got %d", len(e.Pending()))
	}
	if err := e.Settle(frame, 1000); err != nil {
		t.Fatal(err)
	}
	if !e.Grid().Equal(NewGrid()) {
		t.Error("U U' should restore the initial state")
	}
}

func TestEngineSettleBudget(t *testing.T) {
	e := New()
	e.Enqueue(R, U, F)
	err := e.Settle(frame, 3)
	if !errors.Is(err, ErrNotSettled) {
		t.Errorf("expected ErrNotSettled, got %v", err)
	}
}

func TestEngineSnapshotMidRotation(t *testing.T) {
	e := New(WithDuration(testDuration))
	e.Enqueue(R)
	e.Tick(testDuration / 2)

	m, progress, ok := e.Current()
	if !ok || m != R || math.Abs(progress-0.5) > 1e-9 {
		t.Fatalf("current %s %f %v", m, progress, ok)
	}

	rotating := 0
	for _, v := range e.Snapshot() {
		if !v.Rotating {
			if v.World != v.Position.Float() {
				t.Errorf("static cubie %d drawn at %+v", v.ID, v.World)
			}
			continue
		}
		rotating++
		if v.Home.X != 1 {
			t.Errorf("cubie %d from %s should not rotate under R", v.ID, v.Home)
		}
		if v.Position != v.Home {
			t.Errorf("cubie %d committed before the rotation finished", v.ID)
		}
	}
	if rotating != LayerSize {
		t.Errorf("expected %d rotating cubies, got %d", LayerSize, rotating)
	}
}

func TestEngineReset(t *testing.T) {
	e := New()
	idle := 0
	e.OnIdle(func() { idle++ })

	e.Enqueue(R, U, F, L)
	e.Tick(frame)
	e.Reset()

	if e.IsAnimating() {
		t.Error("engine should be idle after reset")
	}
	if !e.IsSolved() || !e.Grid().Equal(NewGrid()) {
		t.Error("reset should restore the solved cube")
	}
	if idle != 1 {
		t.Errorf("idle callbacks %d", idle)
	}

	// The engine keeps working after a reset.
	e.Submit("F")
	if err := e.Settle(frame, 1000); err != nil {
		t.Fatal(err)
	}
	if e.IsSolved() {
		t.Error("F after reset should have been applied")
	}
}

func TestEngineSexyMoveAnimated(t *testing.T) {
	e := New()
	for i := 0; i < 6; i++ {
		e.Enqueue(SexyMove...)
	}
	if err := e.Settle(frame, 10000); err != nil {
		t.Fatal(err)
	}
	if !e.Grid().Equal(NewGrid()) {
		t.Error("(R U R' U') x 6 should return to solved")
	}
	if err := e.Grid().Validate(); err != nil {
		t.Error(err)
	}
}
