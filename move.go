package cubeanim

import "strings"

// Axis is one of the three rotation axes of the cube.
type Axis int

const (
	AxisX Axis = iota // Left to right
	AxisY             // Down to up
	AxisZ             // Back to front
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether a is one of AxisX, AxisY, AxisZ.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// faceLayers maps each face to the layer it turns.
var faceLayers = map[Face]struct {
	axis  Axis
	slice int
}{
	FaceR: {AxisX, 1},
	FaceL: {AxisX, -1},
	FaceU: {AxisY, 1},
	FaceD: {AxisY, -1},
	FaceF: {AxisZ, 1},
	FaceB: {AxisZ, -1},
}

// Move is a quarter turn of one outer layer.
//
// Axis selects the rotation axis, Slice selects the layer along it (-1 or 1)
// and Direction is the sign of the rotation angle about the axis.
type Move struct {
	Axis      Axis
	Slice     int
	Direction int
}

// NewFaceMove returns the clockwise (or counter-clockwise when prime is set)
// turn of face as seen from outside that face.
func NewFaceMove(face Face, prime bool) (Move, error) {
	layer, ok := faceLayers[face]
	if !ok {
		return Move{}, &ParseError{Token: string(face)}
	}
	// Clockwise seen from outside is a negative angle about the outward axis.
	dir := -layer.slice
	if prime {
		dir = -dir
	}
	return Move{Axis: layer.axis, Slice: layer.slice, Direction: dir}, nil
}

// Valid reports whether the move targets an outer layer with a unit direction.
func (m Move) Valid() bool {
	return m.Axis.Valid() &&
		(m.Slice == 1 || m.Slice == -1) &&
		(m.Direction == 1 || m.Direction == -1)
}

// Face returns the face turned by this move.
func (m Move) Face() Face {
	for face, layer := range faceLayers {
		if layer.axis == m.Axis && layer.slice == m.Slice {
			return face
		}
	}
	return ""
}

// Prime reports whether the move is counter-clockwise seen from its face.
func (m Move) Prime() bool {
	return m.Direction == m.Slice
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if !m.Valid() {
		return "?"
	}
	if m.Prime() {
		return string(m.Face()) + "'"
	}
	return string(m.Face())
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	inv := m
	inv.Direction = -m.Direction
	return inv
}

// ParseMove parses one of the twelve face-turn tokens into a Move.
// Anything else, including lower case or padded tokens, returns a *ParseError.
func ParseMove(s string) (Move, error) {
	switch len(s) {
	case 1:
		return NewFaceMove(Face(s), false)
	case 2:
		if s[1] != '\'' {
			return Move{}, &ParseError{Token: s}
		}
		m, err := NewFaceMove(Face(s[:1]), true)
		if err != nil {
			return Move{}, &ParseError{Token: s}
		}
		return m, nil
	default:
		return Move{}, &ParseError{Token: s}
	}
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Invalid moves are skipped.
func ParseMoves(s string) []Move {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue // Skip invalid moves
		}
		moves = append(moves, move)
	}

	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
