// Package cli implements the command-line interface for cubeanim.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/SeamusWaldron/cubeanim/internal/config"
	"github.com/SeamusWaldron/cubeanim/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeanim",
	Short: "Animated 3x3 cube in the terminal",
	Long: `cubeanim - Animate Rubik's cube moves in the terminal.

Type moves in standard notation and watch each layer turn with eased
quarter-turn animation. Moves are queued and played in order, and every
committed move can be journaled to a local SQLite database.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubeanim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Journal database path (overrides journal.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads --config, or the default file when it exists.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a text logger at the configured level, or debug with
// --verbose.
func newLogger(cfg *config.Config, w *os.File) *slog.Logger {
	level, _ := config.ParseLevel(cfg.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newEngine(cfg *config.Config, logger *slog.Logger) *cubeanim.Engine {
	return cubeanim.New(
		cubeanim.WithDuration(cfg.Duration()),
		cubeanim.WithLogger(logger),
	)
}

// journalPath returns --db, or the configured journal path.
func journalPath(cfg *config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return cfg.JournalPath()
}

// openDB opens and migrates the journal database.
func openDB(cfg *config.Config) (*storage.DB, error) {
	path, err := journalPath(cfg)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
