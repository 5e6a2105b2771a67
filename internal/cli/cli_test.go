package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/SeamusWaldron/cubeanim/internal/render"
)

func TestTraceAngles(t *testing.T) {
	data, err := traceAngles(cubeanim.R, 300*time.Millisecond, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	// Start at rest, five in-flight frames, then the committed end angle.
	if len(data) != 7 {
		t.Fatalf("expected 7 samples, got %d: %v", len(data), data)
	}
	if data[0] != 0 || data[len(data)-1] != -90 {
		t.Errorf("endpoints: %v, %v", data[0], data[len(data)-1])
	}
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			t.Errorf("R should turn monotonically negative: %v", data)
			break
		}
	}
}

func TestPlayModelKeys(t *testing.T) {
	e := cubeanim.New()
	m := newPlayModel(e, render.NewRenderer(true), nil, 16*time.Millisecond)

	for _, k := range []rune{'r', 'U', 'x'} {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}})
	}

	if got := m.typed; len(got) != 2 || got[0] != "R" || got[1] != "U'" {
		t.Errorf("typed %v", got)
	}
	if !e.IsAnimating() {
		t.Error("keys should queue moves")
	}

	// Frames drive the engine by wall-clock deltas.
	start := time.Now()
	m.Update(frameMsg(start))
	for i := 1; i <= 100; i++ {
		m.Update(frameMsg(start.Add(time.Duration(i) * 16 * time.Millisecond)))
	}
	if e.IsAnimating() {
		t.Error("frames should have played both moves")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if !e.IsSolved() || m.typed != nil {
		t.Error("backspace should reset")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.50s"},
		{83 * time.Second, "1:23.00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
