package cubeanim

import (
	"fmt"
	"math"
	"time"
)

// AnimatorState is the phase of the rotation animator.
type AnimatorState int

const (
	StateIdle       AnimatorState = iota // No pivot exists
	StateRunning                         // Pivot is rotating
	StateCommitting                      // Landing poses are being written
)

// String returns the string representation of the animator state.
func (s AnimatorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// Animator rotates one detached layer over time and commits the exact result
// when the rotation completes.
type Animator struct {
	grid     *Grid
	duration time.Duration

	state    AnimatorState
	move     Move
	layer    *Layer
	elapsed  time.Duration
	progress float64
	pre      map[int]Pose

	onComplete func(Move)
}

// NewAnimator creates an idle animator for grid. A non-positive duration
// completes every rotation on its first tick.
func NewAnimator(grid *Grid, duration time.Duration) *Animator {
	return &Animator{
		grid:     grid,
		duration: duration,
		state:    StateIdle,
	}
}

// State returns the current animator state.
func (a *Animator) State() AnimatorState {
	return a.state
}

// Duration returns the length of one quarter turn.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// Move returns the move being animated. Only meaningful while not idle.
func (a *Animator) Move() Move {
	return a.move
}

// Layer returns the rotating layer, or nil when idle.
func (a *Animator) Layer() *Layer {
	return a.layer
}

// Progress returns the linear progress of the current rotation in [0,1].
func (a *Animator) Progress() float64 {
	return a.progress
}

// Angle returns the displayed pivot angle in radians.
func (a *Animator) Angle() float64 {
	if a.layer == nil {
		return 0
	}
	return a.layer.pivot.Angle
}

// Start begins animating move on layer, which must have been detached for
// the same axis and slice. onComplete runs after the move has been
// committed to the grid.
func (a *Animator) Start(move Move, layer *Layer, onComplete func(Move)) error {
	if a.state != StateIdle {
		return ErrAnimationInFlight
	}
	if !move.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidMove, move)
	}
	if layer == nil || layer.pivot.Axis != move.Axis || layer.slice != move.Slice {
		return fmt.Errorf("%w: layer does not match move %s", ErrInvalidSlice, move)
	}

	a.move = move
	a.layer = layer
	a.elapsed = 0
	a.progress = 0
	a.pre = a.grid.capture(layer)
	a.onComplete = onComplete
	a.state = StateRunning
	return nil
}

// Tick advances the rotation by delta. It is a no-op when idle. When the
// rotation reaches the end it is committed within the same tick.
func (a *Animator) Tick(delta time.Duration) error {
	if a.state != StateRunning {
		return nil
	}

	if delta > 0 {
		a.elapsed += delta
	}
	if a.duration <= 0 || a.elapsed >= a.duration {
		a.progress = 1
	} else {
		a.progress = float64(a.elapsed) / float64(a.duration)
	}
	a.layer.pivot.Angle = math.Pi / 2 * EaseInOutCubic(a.progress) * float64(a.move.Direction)

	if a.progress >= 1 {
		return a.commit()
	}
	return nil
}

// Finish commits an in-flight rotation immediately.
func (a *Animator) Finish() error {
	if a.state != StateRunning {
		return nil
	}
	a.progress = 1
	a.layer.pivot.Angle = math.Pi / 2 * float64(a.move.Direction)
	return a.commit()
}

// Abort tears down the current rotation without committing it. The layer's
// cubies return to the static set at their pre-rotation poses.
func (a *Animator) Abort() {
	if a.layer != nil {
		a.grid.EndLayer(a.layer)
	}
	a.clear()
}

func (a *Animator) commit() error {
	a.state = StateCommitting
	if err := a.grid.commitLayer(a.layer, a.move, a.pre); err != nil {
		a.clear()
		return err
	}

	move, cb := a.move, a.onComplete
	a.layer = nil
	if cb != nil {
		cb(move)
	}
	a.clear()
	return nil
}

func (a *Animator) clear() {
	a.state = StateIdle
	a.layer = nil
	a.pre = nil
	a.elapsed = 0
	a.progress = 0
	a.onComplete = nil
}

// LivePose returns a cubie's world-space position and rotation as it should
// be displayed this frame, including the pivot rotation when the cubie is
// part of the rotating layer.
func (a *Animator) LivePose(id int) (Vec3f, Mat3) {
	c := a.grid.cubies[id]
	if a.state == StateRunning && a.layer != nil && a.layer.Contains(id) {
		return a.layer.worldPosition(id), a.layer.pivot.Transform().Mul(c.Orientation.Float())
	}
	return c.Position.Float(), c.Orientation.Float()
}
