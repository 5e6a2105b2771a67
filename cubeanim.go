// Package cubeanim provides the kinematics and animation engine for a 3x3x3
// Rubik's cube: 27 cubies on an integer grid, face-turn notation, layer
// extraction and time-based rotation with exact integer commits.
//
// # Features
//
//   - Face-turn notation parsing (U, D, L, R, F, B and primed variants)
//   - Arena of 27 cubies with integral positions and exact orientations
//   - Layer isolation under a transient pivot
//   - Eased rotation animation driven by explicit frame ticks
//   - FIFO move scheduling with at most one animation in flight
//
// # Quick Start
//
// Drive the engine from your own render loop:
//
//	engine := cubeanim.New()
//	engine.OnMoveComplete(func(m cubeanim.Move) {
//	    fmt.Println("Committed:", m.Notation())
//	})
//
//	engine.Submit("R")
//	engine.Submit("U'")
//
//	for engine.IsAnimating() {
//	    engine.Tick(16 * time.Millisecond)
//	    render(engine.Snapshot())
//	}
//
// Unknown tokens passed to Submit are ignored; nothing is queued for them.
//
// # Instant Moves
//
// The Grid can be used without animation:
//
//	grid := cubeanim.NewGrid()
//	grid.Apply(cubeanim.R, cubeanim.U, cubeanim.RPrime, cubeanim.UPrime)
//	fmt.Println("Solved:", grid.IsSolved())
//
// # Frame Model
//
// All mutation happens inside Tick. There are no goroutines or timers in the
// engine; the caller decides the frame rate and passes the elapsed time.
package cubeanim
