package cubeanim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	engine.Enqueue(cubeanim.R, cubeanim.U, cubeanim.RPrime, cubeanim.UPrime)
var (
	// Right face moves
	R      = Move{Axis: AxisX, Slice: 1, Direction: -1} // Right clockwise
	RPrime = Move{Axis: AxisX, Slice: 1, Direction: 1}  // Right counter-clockwise

	// Left face moves
	L      = Move{Axis: AxisX, Slice: -1, Direction: 1}  // Left clockwise
	LPrime = Move{Axis: AxisX, Slice: -1, Direction: -1} // Left counter-clockwise

	// Up face moves
	U      = Move{Axis: AxisY, Slice: 1, Direction: -1} // Up clockwise
	UPrime = Move{Axis: AxisY, Slice: 1, Direction: 1}  // Up counter-clockwise

	// Down face moves
	D      = Move{Axis: AxisY, Slice: -1, Direction: 1}  // Down clockwise
	DPrime = Move{Axis: AxisY, Slice: -1, Direction: -1} // Down counter-clockwise

	// Front face moves
	F      = Move{Axis: AxisZ, Slice: 1, Direction: -1} // Front clockwise
	FPrime = Move{Axis: AxisZ, Slice: 1, Direction: 1}  // Front counter-clockwise

	// Back face moves
	B      = Move{Axis: AxisZ, Slice: -1, Direction: 1}  // Back clockwise
	BPrime = Move{Axis: AxisZ, Slice: -1, Direction: -1} // Back counter-clockwise
)

// AllMoves lists the twelve quarter turns in notation order.
var AllMoves = []Move{U, UPrime, D, DPrime, L, LPrime, R, RPrime, F, FPrime, B, BPrime}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}
