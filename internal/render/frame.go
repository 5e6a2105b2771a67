// Package render draws engine frames for the terminal with lipgloss.
package render

import "github.com/SeamusWaldron/cubeanim"

// Frame is everything the terminal needs to draw one engine frame.
type Frame struct {
	Faces  [6][9]cubeanim.Color
	Moving [6][9]bool // facelet belongs to the turning layer

	Current  cubeanim.Move
	Turning  bool
	Progress float64 // linear, in [0,1]
	Angle    float64 // eased pivot angle, radians

	Pending []cubeanim.Move
	Solved  bool
	Faults  int
}

// Capture reads the current frame from e.
func Capture(e *cubeanim.Engine) Frame {
	g := e.Grid()
	f := Frame{
		Faces:   g.Facelets(),
		Angle:   e.Angle(),
		Pending: e.Pending(),
		Solved:  g.IsSolved(),
		Faults:  e.Faults(),
	}
	f.Current, f.Progress, f.Turning = e.Current()

	owners := g.FaceletOwners()
	snap := e.Snapshot()
	for _, side := range cubeanim.Sides {
		for i, id := range owners[side] {
			if id >= 0 && snap[id].Rotating {
				f.Moving[side][i] = true
			}
		}
	}
	return f
}
