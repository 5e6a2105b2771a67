// Package config loads the cubeanim YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDurationMs = 300
	DefaultFPS        = 60
	DefaultLogLevel   = "info"
	DefaultJournal    = "~/.cubeanim/journal.db"
)

type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Display   DisplayConfig   `yaml:"display"`
	Journal   JournalConfig   `yaml:"journal"`
	Log       LogConfig       `yaml:"log"`
}

type AnimationConfig struct {
	DurationMs int `yaml:"duration_ms"`
}

type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Animation: AnimationConfig{DurationMs: DefaultDurationMs},
		Display:   DisplayConfig{FPS: DefaultFPS},
		Journal:   JournalConfig{Enabled: true, Path: DefaultJournal},
		Log:       LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultPath returns ~/.cubeanim/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubeanim", "config.yaml"), nil
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Animation.DurationMs <= 0 {
		return fmt.Errorf("animation.duration_ms must be positive, got %d", c.Animation.DurationMs)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return errors.New("journal.path is required when the journal is enabled")
	}
	return nil
}

// Duration is the animation length of one quarter turn.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.Animation.DurationMs) * time.Millisecond
}

// FrameInterval is the time between two rendered frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// JournalPath returns the journal path with a leading ~ expanded.
func (c *Config) JournalPath() (string, error) {
	p := c.Journal.Path
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
