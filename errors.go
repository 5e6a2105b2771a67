package cubeanim

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubeanim package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubeanim: invalid move notation")

	// Grid and layer errors
	ErrInvalidMove    = errors.New("cubeanim: invalid move")
	ErrInvalidSlice   = errors.New("cubeanim: invalid layer slice")
	ErrLayerSelection = errors.New("cubeanim: layer selection fault")
	ErrGridCorrupt    = errors.New("cubeanim: grid invariant violated")

	// Animation errors
	ErrAnimationInFlight = errors.New("cubeanim: animation already in flight")
	ErrNotSettled        = errors.New("cubeanim: engine did not settle")
)

// ParseError reports a move token outside the notation alphabet.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cubeanim: invalid move notation %q", e.Token)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}

// LayerSelectionFault means a layer query did not select a clean set of nine
// static cubies. It signals grid corruption; the move that triggered it is
// dropped and the grid is left as it was.
type LayerSelectionFault struct {
	Axis   Axis
	Slice  int
	Count  int
	Reason string
}

func (e *LayerSelectionFault) Error() string {
	return fmt.Sprintf("cubeanim: layer selection fault on %s=%d: %s (selected %d)",
		e.Axis, e.Slice, e.Reason, e.Count)
}

func (e *LayerSelectionFault) Unwrap() error {
	return ErrLayerSelection
}
