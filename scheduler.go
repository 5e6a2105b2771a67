package cubeanim

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// Scheduler serializes moves so that at most one rotation animates at a
// time. Moves run strictly in the order they were enqueued; none is ever
// dropped except when its layer selection faults.
type Scheduler struct {
	grid     *Grid
	animator *Animator
	logger   *slog.Logger

	queue     []Move
	committed []Move // commits reported by the animator during the current tick
	faults    int

	onComplete func(Move)
	onFault    func(Move, error)
}

// NewScheduler creates a scheduler driving animator over grid.
func NewScheduler(grid *Grid, animator *Animator, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		grid:     grid,
		animator: animator,
		logger:   logger,
	}
}

// OnComplete sets the callback invoked after each move is committed.
func (s *Scheduler) OnComplete(cb func(Move)) {
	s.onComplete = cb
}

// OnFault sets the callback invoked when a move is dropped because its layer
// could not be isolated.
func (s *Scheduler) OnFault(cb func(Move, error)) {
	s.onFault = cb
}

// Enqueue appends moves to the tail of the queue.
func (s *Scheduler) Enqueue(moves ...Move) {
	s.queue = append(s.queue, moves...)
}

// Pending returns a copy of the moves waiting to be animated.
func (s *Scheduler) Pending() []Move {
	out := make([]Move, len(s.queue))
	copy(out, s.queue)
	return out
}

// Len returns the number of queued moves.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Faults returns the number of moves dropped for layer selection faults.
func (s *Scheduler) Faults() int {
	return s.faults
}

// IsAnimating reports whether moves are queued or a rotation is in flight.
func (s *Scheduler) IsAnimating() bool {
	return len(s.queue) > 0 || s.animator.State() != StateIdle
}

// Tick runs one frame: admit the next move if the animator is idle, advance
// the animation by delta, then hand completed moves to the completion
// callback and admit the following move so it starts on the next frame.
func (s *Scheduler) Tick(delta time.Duration) {
	s.admit()
	if err := s.animator.Tick(delta); err != nil {
		s.fault(s.animator.Move(), err)
	}
	s.drain()
	s.admit()
}

// Flush drops every queued move and commits any in-flight rotation
// immediately. It returns the dropped moves.
func (s *Scheduler) Flush() []Move {
	dropped := s.queue
	s.queue = nil
	if err := s.animator.Finish(); err != nil {
		s.fault(s.animator.Move(), err)
	}
	s.drain()
	return dropped
}

// admit starts the head of the queue when nothing is animating. Moves whose
// layer cannot be isolated are dropped and the next one is tried.
func (s *Scheduler) admit() {
	for s.animator.State() == StateIdle && len(s.queue) > 0 {
		move := s.queue[0]
		s.queue = s.queue[1:]

		layer, err := s.grid.BeginLayer(move.Axis, move.Slice)
		if err != nil {
			s.fault(move, err)
			continue
		}
		if err := s.animator.Start(move, layer, s.committedMove); err != nil {
			s.grid.EndLayer(layer)
			s.fault(move, err)
			continue
		}
		s.logger.Debug("scheduler: move admitted",
			"move", move.Notation(),
			"session", layer.Session(),
			"pending", len(s.queue))
	}
}

// committedMove is the animator's completion continuation. It only records
// the move; the scheduler loop handles it after the animator returns.
func (s *Scheduler) committedMove(m Move) {
	s.committed = append(s.committed, m)
}

func (s *Scheduler) drain() {
	done := s.committed
	s.committed = nil
	for _, m := range done {
		s.logger.Debug("scheduler: move committed", "move", m.Notation())
		if s.onComplete != nil {
			s.onComplete(m)
		}
	}
}

func (s *Scheduler) fault(m Move, err error) {
	s.faults++
	var lsf *LayerSelectionFault
	if errors.As(err, &lsf) {
		s.logger.Error("scheduler: layer selection fault, move dropped",
			"move", m.Notation(),
			"axis", lsf.Axis.String(),
			"slice", lsf.Slice,
			"selected", lsf.Count,
			"reason", lsf.Reason)
	} else {
		s.logger.Error("scheduler: move dropped", "move", m.Notation(), "error", err)
	}
	if s.onFault != nil {
		s.onFault(m, err)
	}
}
