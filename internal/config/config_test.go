package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Duration() != 300*time.Millisecond {
		t.Errorf("expected 300ms, got %s", cfg.Duration())
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("expected 60 fps, got %s", cfg.FrameInterval())
	}
	if !cfg.Journal.Enabled {
		t.Error("journal should be enabled by default")
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "animation:\n  duration_ms: 120\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Animation.DurationMs != 120 {
		t.Errorf("expected 120, got %d", cfg.Animation.DurationMs)
	}
	if cfg.Display.FPS != DefaultFPS {
		t.Errorf("fps should default to %d, got %d", DefaultFPS, cfg.Display.FPS)
	}
	if cfg.Journal.Path != DefaultJournal {
		t.Errorf("journal path should default, got %q", cfg.Journal.Path)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero duration", "animation:\n  duration_ms: 0\n"},
		{"negative fps", "display:\n  fps: -1\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"no journal path", "journal:\n  enabled: true\n  path: \"\"\n"},
		{"not yaml", "animation: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			os.WriteFile(path, []byte(tt.yaml), 0644)
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Animation.DurationMs != DefaultDurationMs {
		t.Error("missing file should yield defaults")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Display.FPS = 30
	cfg.Journal.Enabled = false

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestJournalPathExpandsHome(t *testing.T) {
	cfg := DefaultConfig()
	p, err := cfg.JournalPath()
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(p, "~") || !strings.HasSuffix(p, filepath.Join(".cubeanim", "journal.db")) {
		t.Errorf("unexpected path %q", p)
	}

	cfg.Journal.Path = "/tmp/j.db"
	if p, _ := cfg.JournalPath(); p != "/tmp/j.db" {
		t.Errorf("absolute path changed to %q", p)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.name, got, err)
		}
	}
}
