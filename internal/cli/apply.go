package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/SeamusWaldron/cubeanim/internal/recorder"
	"github.com/SeamusWaldron/cubeanim/internal/render"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Animate a move sequence headlessly and print the result",
	Long: `Queue a move sequence, run the animation with a fixed frame step until
every move has been committed, and print the resulting cube.

Unknown tokens are ignored. Example:

  cubeanim apply "R U R' U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var (
	applyRecord bool
	applyNotes  string
	applyStep   time.Duration
	applyPlain  bool
)

func init() {
	applyCmd.Flags().BoolVar(&applyRecord, "record", false, "Journal the committed moves")
	applyCmd.Flags().StringVar(&applyNotes, "notes", "", "Notes stored with the journal session")
	applyCmd.Flags().DurationVar(&applyStep, "step", 0, "Frame step (default: 1/display.fps)")
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Draw stickers as letters instead of colors")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)
	engine := newEngine(cfg, logger)

	step := applyStep
	if step <= 0 {
		step = cfg.FrameInterval()
	}

	var session *recorder.Session
	if applyRecord {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		session = recorder.NewSession(db, logger)
		if _, err := session.Start("apply", applyNotes); err != nil {
			return err
		}
		session.Attach(engine)
	}

	var committed []cubeanim.Move
	if session == nil {
		engine.OnMoveComplete(func(m cubeanim.Move) { committed = append(committed, m) })
	} else {
		session.SetMoveCallback(func(m cubeanim.Move) { committed = append(committed, m) })
	}

	accepted := 0
	for _, token := range strings.Fields(strings.Join(args, " ")) {
		if engine.Submit(token) {
			accepted++
		} else {
			logger.Warn("apply: ignoring unknown token", "token", token)
		}
	}

	perMove := int(cfg.Duration()/step) + 2
	if err := engine.Settle(step, (accepted+1)*perMove); err != nil {
		return err
	}

	if session != nil {
		if err := session.End(); err != nil {
			return err
		}
	}

	r := render.NewRenderer(applyPlain)
	fmt.Println(r.Net(render.Capture(engine)))
	fmt.Println()
	fmt.Printf("Moves:  %s (%d committed)\n", cubeanim.FormatMoves(committed), len(committed))
	if engine.Faults() > 0 {
		fmt.Printf("Faults: %d\n", engine.Faults())
	}
	if engine.IsSolved() {
		fmt.Println("Solved: yes")
	} else {
		fmt.Println("Solved: no")
	}
	if session != nil {
		fmt.Printf("Journal: %s\n", session.SessionID())
	}

	return nil
}
