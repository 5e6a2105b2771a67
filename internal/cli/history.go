package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/SeamusWaldron/cubeanim/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List journal sessions or the moves of one session",
	Long: `Without arguments, list recent journal sessions. With a session ID (or a
unique prefix of one), print the moves that session committed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var (
	historyLimit  int
	historyDelete bool
	historyReplay bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of sessions to list")
	historyCmd.Flags().BoolVar(&historyDelete, "delete", false, "Delete the given session")
	historyCmd.Flags().BoolVar(&historyReplay, "replay", false, "Replay the session's moves and print the final cube")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)

	if len(args) == 0 {
		return listSessions(sessions)
	}

	session, err := findSession(sessions, args[0])
	if err != nil {
		return err
	}

	if historyDelete {
		if err := sessions.Delete(session.SessionID); err != nil {
			return err
		}
		fmt.Printf("Deleted session %s\n", session.SessionID)
		return nil
	}

	return showSession(storage.NewMoveRepository(db), session)
}

func listSessions(sessions *storage.SessionRepository) error {
	list, err := sessions.List(historyLimit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tSTARTED\tSOURCE\tMOVES\tDURATION")
	for _, s := range list {
		duration := "open"
		if s.EndedAt != nil {
			duration = formatDuration(s.EndedAt.Sub(s.StartedAt))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			s.SessionID[:8], s.StartedAt.Local().Format("2006-01-02 15:04:05"), s.Source, s.MoveCount, duration)
	}
	return w.Flush()
}

// findSession resolves a full session ID or a unique prefix.
func findSession(sessions *storage.SessionRepository, id string) (*storage.Session, error) {
	s, err := sessions.Get(id)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	list, err := sessions.List(10000)
	if err != nil {
		return nil, err
	}
	var match *storage.Session
	for i := range list {
		if strings.HasPrefix(list[i].SessionID, id) {
			if match != nil {
				return nil, fmt.Errorf("session prefix %q is ambiguous", id)
			}
			match = &list[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("session %q not found", id)
	}
	return match, nil
}

func showSession(moveRepo *storage.MoveRepository, s *storage.Session) error {
	records, err := moveRepo.ListBySession(s.SessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Started: %s (%s)\n", s.StartedAt.Local().Format(time.RFC3339), s.Source)
	if s.Notes != nil {
		fmt.Printf("Notes:   %s\n", *s.Notes)
	}
	fmt.Printf("Moves:   %d\n", len(records))
	fmt.Println()

	moves := make([]cubeanim.Move, 0, len(records))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tAT\tMOVE\tAXIS\tSLICE\tDIR")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%+d\t%+d\n",
			r.Seq, formatDuration(time.Duration(r.TsMs)*time.Millisecond), r.Notation, r.Axis, r.Slice, r.Direction)
		if m, err := r.Move(); err == nil {
			moves = append(moves, m)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if historyReplay {
		g := cubeanim.NewGrid()
		if err := g.Apply(moves...); err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(g.String())
		fmt.Printf("Solved: %v\n", g.IsSolved())
	}

	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := d.Seconds() - float64(m*60)
	return fmt.Sprintf("%d:%05.2f", m, s)
}
