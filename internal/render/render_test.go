package render

import (
	"strings"
	"testing"
	"time"

	"github.com/SeamusWaldron/cubeanim"
)

func netRows(t *testing.T, net string) [][]string {
	t.Helper()
	lines := strings.Split(net, "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 net lines, got %d:\n%s", len(lines), net)
	}
	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = strings.Fields(l)
	}
	return rows
}

func TestNetSolved(t *testing.T) {
	r := NewRenderer(true)
	rows := netRows(t, r.Net(Capture(cubeanim.New())))

	want := []string{
		"W W W", "W W W", "W W W",
		"O O O G G G R R R B B B",
		"O O O G G G R R R B B B",
		"O O O G G G R R R B B B",
		"Y Y Y", "Y Y Y", "Y Y Y",
	}
	for i, w := range want {
		if got := strings.Join(rows[i], " "); got != w {
			t.Errorf("row %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestNetMarksTurningLayer(t *testing.T) {
	e := cubeanim.New(cubeanim.WithDuration(300 * time.Millisecond))
	e.Enqueue(cubeanim.R)
	e.Tick(150 * time.Millisecond)

	rows := netRows(t, NewRenderer(true).Net(Capture(e)))

	// Up row: only the right column turns.
	if got := strings.Join(rows[0], " "); got != "W W w" {
		t.Errorf("up row: %q", got)
	}
	// Middle row: F right column and the whole R face.
	mid := rows[3]
	if mid[3] != "G" || mid[5] != "g" {
		t.Errorf("front row: %v", mid[3:6])
	}
	for _, s := range mid[6:9] {
		if s != "r" {
			t.Errorf("right face should be turning: %v", mid[6:9])
			break
		}
	}
	// The back column on the R side is the back face's left column.
	if mid[9] != "b" || mid[11] != "B" {
		t.Errorf("back row: %v", mid[9:12])
	}
}

func TestNetAfterCommit(t *testing.T) {
	e := cubeanim.New()
	e.Enqueue(cubeanim.R)
	if err := e.Settle(16*time.Millisecond, 100); err != nil {
		t.Fatal(err)
	}

	rows := netRows(t, NewRenderer(true).Net(Capture(e)))
	// R carries the front column up.
	if got := strings.Join(rows[0], " "); got != "W W G" {
		t.Errorf("up row after R: %q", got)
	}
	if got := strings.Join(rows[6], " "); got != "Y Y B" {
		t.Errorf("down row after R: %q", got)
	}
}

func TestBar(t *testing.T) {
	r := NewRenderer(true)
	r.SetBarWidth(10)

	tests := []struct {
		progress float64
		filled   int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := r.Bar(tt.progress)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("Bar(%v): %d filled cells", tt.progress, got)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != 10 {
			t.Errorf("Bar(%v): width %d", tt.progress, got)
		}
	}
}

func TestStatus(t *testing.T) {
	r := NewRenderer(true)

	e := cubeanim.New()
	if got := r.Status(Capture(e)); !strings.Contains(got, "idle") || !strings.Contains(got, "SOLVED") {
		t.Errorf("idle status: %q", got)
	}

	e.Enqueue(cubeanim.R, cubeanim.U)
	e.Tick(16 * time.Millisecond)
	got := r.Status(Capture(e))
	if !strings.HasPrefix(got, "R ") {
		t.Errorf("status should lead with the current move: %q", got)
	}
	if !strings.Contains(got, "queue: 1 [U]") {
		t.Errorf("status should list the queue: %q", got)
	}
	if strings.Contains(got, "SOLVED") {
		t.Errorf("turning cube reported solved: %q", got)
	}
}

func TestColorNetShape(t *testing.T) {
	net := NewRenderer(false).Net(Capture(cubeanim.New()))
	if n := len(strings.Split(net, "\n")); n != 9 {
		t.Errorf("expected 9 lines, got %d", n)
	}
}
