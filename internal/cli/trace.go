package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeanim"
)

var traceCmd = &cobra.Command{
	Use:   "trace <move>",
	Short: "Plot the eased angle of one move frame by frame",
	Long: `Animate a single move with the configured duration and frame rate and
plot the displayed layer angle, in degrees, for every frame.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

var (
	traceHeight int
	traceWidth  int
)

func init() {
	traceCmd.Flags().IntVar(&traceHeight, "height", 10, "Plot height in rows")
	traceCmd.Flags().IntVar(&traceWidth, "width", 0, "Plot width in columns (default: one per frame)")
	rootCmd.AddCommand(traceCmd)
}

// traceAngles animates move on a fresh engine and samples the displayed
// angle in degrees after every frame, including the committed end angle.
func traceAngles(move cubeanim.Move, duration, step time.Duration) ([]float64, error) {
	engine := cubeanim.New(cubeanim.WithDuration(duration))
	engine.Enqueue(move)

	data := []float64{0}
	for engine.IsAnimating() {
		if len(data) > 100000 {
			return nil, fmt.Errorf("%w: %s", cubeanim.ErrNotSettled, move)
		}
		engine.Tick(step)
		if _, _, ok := engine.Current(); ok {
			data = append(data, engine.Angle()*180/math.Pi)
		}
	}
	return append(data, float64(90*move.Direction)), nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	move, err := cubeanim.ParseMove(args[0])
	if err != nil {
		return err
	}

	data, err := traceAngles(move, cfg.Duration(), cfg.FrameInterval())
	if err != nil {
		return err
	}

	opts := []asciigraph.Option{
		asciigraph.Height(traceHeight),
		asciigraph.Caption(fmt.Sprintf("%s: angle (deg) over %d frames at %d fps, %s",
			move, len(data)-1, cfg.Display.FPS, cfg.Duration())),
	}
	if traceWidth > 0 {
		opts = append(opts, asciigraph.Width(traceWidth))
	}

	fmt.Println(asciigraph.Plot(data, opts...))
	return nil
}
