package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/SeamusWaldron/cubeanim/internal/recorder"
	"github.com/SeamusWaldron/cubeanim/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive animated cube",
	Long: `Start an interactive TUI that animates every move you type.

Keyboard shortcuts:
  u d l r f b  - Turn a face clockwise
  U D L R F B  - Turn a face counter-clockwise (prime)
  backspace    - Reset to the solved cube
  q/Esc        - Quit

Moves typed while a layer is turning are queued and played in order.`,
	RunE: runPlay,
}

var (
	playNoJournal bool
	playPlain     bool
)

func init() {
	playCmd.Flags().BoolVar(&playNoJournal, "no-journal", false, "Do not journal committed moves")
	playCmd.Flags().BoolVar(&playPlain, "plain", false, "Draw stickers as letters instead of colors")
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// keyTokens maps keys to move tokens. Shifted letters are primes.
var keyTokens = map[string]string{
	"u": "U", "U": "U'",
	"d": "D", "D": "D'",
	"l": "L", "L": "L'",
	"r": "R", "R": "R'",
	"f": "F", "F": "F'",
	"b": "B", "B": "B'",
}

// Messages
type frameMsg time.Time

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model
type playModel struct {
	engine   *cubeanim.Engine
	renderer *render.Renderer
	session  *recorder.Session
	interval time.Duration

	lastFrame time.Time
	typed     []string
	err       error
}

func newPlayModel(engine *cubeanim.Engine, renderer *render.Renderer, session *recorder.Session, interval time.Duration) *playModel {
	m := &playModel{
		engine:   engine,
		renderer: renderer,
		session:  session,
		interval: interval,
	}
	engine.OnFault(func(mv cubeanim.Move, err error) {
		m.err = fmt.Errorf("%s dropped: %w", mv, err)
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return frameCmd(m.interval)
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "backspace":
			m.engine.Reset()
			m.typed = nil
			m.err = nil

		default:
			if token, ok := keyTokens[key]; ok && m.engine.Submit(token) {
				m.typed = append(m.typed, token)
				if len(m.typed) > 24 {
					m.typed = m.typed[len(m.typed)-24:]
				}
			}
		}

	case frameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.engine.Tick(now.Sub(m.lastFrame))
		}
		m.lastFrame = now
		return m, frameCmd(m.interval)
	}

	return m, nil
}

func (m *playModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cubeanim"))
	if m.session != nil && m.session.State() == recorder.StateRecording {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  journal %s (%d moves)", m.session.SessionID()[:8], m.session.MoveCount())))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Render(render.Capture(m.engine)))
	b.WriteString("\n\n")

	if len(m.typed) > 0 {
		b.WriteString(helpStyle.Render("typed: " + strings.Join(m.typed, " ")))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("udlrfb: turn  UDLRFB: prime  backspace: reset  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file when
	// debugging and nowhere otherwise.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		path, err := journalPath(cfg)
		if err != nil {
			return err
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := tea.LogToFile(filepath.Join(dir, "play.log"), "cubeanim")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = newLogger(cfg, f)
	}

	engine := newEngine(cfg, logger)

	var session *recorder.Session
	if cfg.Journal.Enabled && !playNoJournal {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		session = recorder.NewSession(db, logger)
		if _, err := session.Start("play", ""); err != nil {
			return err
		}
		session.Attach(engine)
		defer func() {
			if err := session.End(); err != nil {
				logger.Error("play: failed to end session", "error", err)
			}
		}()
	}

	model := newPlayModel(engine, render.NewRenderer(playPlain), session, cfg.FrameInterval())
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
