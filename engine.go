package cubeanim

import (
	"fmt"
	"log/slog"
	"time"
)

// CubieView is what a presentation layer needs to draw one cubie.
type CubieView struct {
	ID          int
	Home        Vec3
	Colors      [6]Color // +X, -X, +Y, -Y, +Z, -Z in the cubie's own frame
	Position    Vec3     // committed grid position
	Orientation Rotation // committed orientation

	// World is the position to draw this frame and Transform the rotation,
	// both including the pivot rotation while the cubie's layer is turning.
	World     Vec3f
	Transform Mat3
	Rotating  bool
}

// Engine ties the cubie grid, the rotation animator and the move scheduler
// together behind a frame-driven API.
//
// Engine is not safe for concurrent use: call every method from the goroutine
// that runs the render loop.
type Engine struct {
	grid      *Grid
	animator  *Animator
	scheduler *Scheduler
	logger    *slog.Logger

	animating bool

	// Callbacks
	onMoveComplete func(Move)
	onIdle         func()
	onFault        func(Move, error)
}

// New creates an engine holding a solved cube.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	grid := NewGrid()
	animator := NewAnimator(grid, cfg.duration)
	e := &Engine{
		grid:      grid,
		animator:  animator,
		scheduler: NewScheduler(grid, animator, cfg.logger),
		logger:    cfg.logger,
	}
	e.scheduler.OnComplete(func(m Move) {
		if e.onMoveComplete != nil {
			e.onMoveComplete(m)
		}
	})
	e.scheduler.OnFault(func(m Move, err error) {
		if e.onFault != nil {
			e.onFault(m, err)
		}
	})
	return e
}

// OnMoveComplete sets a callback that fires after each move is committed.
func (e *Engine) OnMoveComplete(cb func(Move)) {
	e.onMoveComplete = cb
}

// OnIdle sets a callback that fires when IsAnimating turns from true to false.
func (e *Engine) OnIdle(cb func()) {
	e.onIdle = cb
}

// OnFault sets a callback that fires when a move is dropped because its
// layer could not be isolated.
func (e *Engine) OnFault(cb func(Move, error)) {
	e.onFault = cb
}

// Submit parses token and queues the move. Unknown tokens are ignored and
// nothing is queued; the return value reports whether the move was accepted.
func (e *Engine) Submit(token string) bool {
	m, err := ParseMove(token)
	if err != nil {
		e.logger.Debug("engine: ignoring unknown move", "token", token)
		return false
	}
	e.Enqueue(m)
	return true
}

// Enqueue queues moves in order.
func (e *Engine) Enqueue(moves ...Move) {
	if len(moves) == 0 {
		return
	}
	e.scheduler.Enqueue(moves...)
	e.animating = true
}

// Tick advances the engine by one frame of length delta.
func (e *Engine) Tick(delta time.Duration) {
	e.scheduler.Tick(delta)
	e.checkIdle()
}

func (e *Engine) checkIdle() {
	if e.animating && !e.scheduler.IsAnimating() {
		e.animating = false
		if e.onIdle != nil {
			e.onIdle()
		}
	}
}

// IsAnimating reports whether moves are queued or a rotation is in flight.
// Input surfaces can use it to gate further moves.
func (e *Engine) IsAnimating() bool {
	return e.scheduler.IsAnimating()
}

// Pending returns the queued moves that have not started yet.
func (e *Engine) Pending() []Move {
	return e.scheduler.Pending()
}

// Current returns the move being animated and its linear progress.
func (e *Engine) Current() (Move, float64, bool) {
	if e.animator.State() == StateIdle {
		return Move{}, 0, false
	}
	return e.animator.Move(), e.animator.Progress(), true
}

// Angle returns the displayed pivot angle of the current rotation in
// radians, or 0 when idle.
func (e *Engine) Angle() float64 {
	return e.animator.Angle()
}

// Faults returns how many moves have been dropped for layer faults.
func (e *Engine) Faults() int {
	return e.scheduler.Faults()
}

// Snapshot returns the drawable state of every cubie for this frame.
func (e *Engine) Snapshot() []CubieView {
	views := make([]CubieView, CubieCount)
	for i, c := range e.grid.cubies {
		world, transform := e.animator.LivePose(c.ID)
		views[i] = CubieView{
			ID:          c.ID,
			Home:        c.Home,
			Colors:      c.Colors,
			Position:    c.Position,
			Orientation: c.Orientation,
			World:       world,
			Transform:   transform,
			Rotating:    c.Detached(),
		}
	}
	return views
}

// Grid returns a copy of the committed cube state.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// IsSolved returns true if the committed state is solved.
func (e *Engine) IsSolved() bool {
	return e.grid.IsSolved()
}

// Reset drops queued moves, commits any in-flight rotation and restores the
// solved cube.
func (e *Engine) Reset() {
	dropped := e.scheduler.Flush()
	e.grid.reset()
	e.logger.Info("engine: reset", "dropped", len(dropped))
	e.checkIdle()
}

// Settle ticks with a fixed frame step until nothing is animating. It gives
// up with ErrNotSettled after maxFrames frames.
func (e *Engine) Settle(step time.Duration, maxFrames int) error {
	for frame := 0; e.IsAnimating(); frame++ {
		if frame >= maxFrames {
			return fmt.Errorf("%w: %d moves pending after %d frames", ErrNotSettled, e.scheduler.Len(), frame)
		}
		e.Tick(step)
	}
	return nil
}
