package cubeanim

import (
	"fmt"
	"strings"
)

// CubieCount is the number of unit cubes in a 3x3x3 cube.
const CubieCount = 27

// LayerSize is the number of cubies in one outer layer.
const LayerSize = 9

// staticContainer tags cubies owned directly by the grid.
const staticContainer = 0

// Cubie is one of the 27 unit cubes.
//
// ID and Home identify the cubie and never change. Colors holds the sticker
// for each side in slot order (+X, -X, +Y, -Y, +Z, -Z) relative to the
// cubie's own frame; only Position and Orientation change over its lifetime.
type Cubie struct {
	ID          int
	Home        Vec3
	Colors      [6]Color
	Position    Vec3
	Orientation Rotation

	container int
}

// ColorFacing returns the sticker currently showing in world direction dir,
// which must be a unit axis vector.
func (c Cubie) ColorFacing(dir Vec3) Color {
	local := c.Orientation.Transpose().Apply(dir)
	return c.Colors[sideFromNormal(local)]
}

// Detached reports whether the cubie currently belongs to a rotating layer.
func (c Cubie) Detached() bool {
	return c.container != staticContainer
}

// Grid is the authoritative arena of all 27 cubies, indexed by ID.
// Each cubie is tagged with the container that currently owns it: the grid's
// static set, or the rotating layer of one animation session.
type Grid struct {
	cubies      [CubieCount]Cubie
	lastSession int
}

// NewGrid creates a solved cube with standard orientation:
// White on top, Green in front.
func NewGrid() *Grid {
	g := &Grid{}
	g.reset()
	return g
}

func (g *Grid) reset() {
	id := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				home := Vec3{x, y, z}
				var colors [6]Color
				for _, side := range Sides {
					n := side.Normal()
					// Only sides on the cube's surface carry a sticker.
					if n.X != 0 && n.X == x || n.Y != 0 && n.Y == y || n.Z != 0 && n.Z == z {
						colors[side] = solvedColor(side)
					}
				}
				g.cubies[id] = Cubie{
					ID:          id,
					Home:        home,
					Colors:      colors,
					Position:    home,
					Orientation: Identity(),
				}
				id++
			}
		}
	}
	g.lastSession = 0
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}

// Cubies returns a copy of every cubie record, ordered by ID.
func (g *Grid) Cubies() []Cubie {
	out := make([]Cubie, CubieCount)
	copy(out, g.cubies[:])
	return out
}

// Cubie returns the cubie with the given ID.
func (g *Grid) Cubie(id int) (Cubie, bool) {
	if id < 0 || id >= CubieCount {
		return Cubie{}, false
	}
	return g.cubies[id], true
}

// At returns the cubie currently at pos.
func (g *Grid) At(pos Vec3) (Cubie, bool) {
	for _, c := range g.cubies {
		if c.Position == pos {
			return c, true
		}
	}
	return Cubie{}, false
}

// Select returns the IDs of cubies whose position along axis equals slice,
// regardless of which container owns them.
func (g *Grid) Select(axis Axis, slice int) []int {
	var ids []int
	for _, c := range g.cubies {
		if c.Position.Component(axis) == slice {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Static returns the IDs of cubies owned directly by the grid.
func (g *Grid) Static() []int {
	ids := make([]int, 0, CubieCount)
	for _, c := range g.cubies {
		if c.container == staticContainer {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// place commits a new pose for a cubie. Positions must be on the grid.
func (g *Grid) place(id int, pos Vec3, orientation Rotation) error {
	if !pos.OnGrid() {
		return fmt.Errorf("%w: cubie %d placed off grid at %s", ErrGridCorrupt, id, pos)
	}
	g.cubies[id].Position = pos
	g.cubies[id].Orientation = orientation
	return nil
}

// Validate checks the at-rest invariants: every position is on the grid,
// no two cubies share a position and every cubie is static.
func (g *Grid) Validate() error {
	seen := make(map[Vec3]int, CubieCount)
	for _, c := range g.cubies {
		if !c.Position.OnGrid() {
			return fmt.Errorf("%w: cubie %d off grid at %s", ErrGridCorrupt, c.ID, c.Position)
		}
		if other, ok := seen[c.Position]; ok {
			return fmt.Errorf("%w: cubies %d and %d share %s", ErrGridCorrupt, other, c.ID, c.Position)
		}
		seen[c.Position] = c.ID
		if c.container != staticContainer {
			return fmt.Errorf("%w: cubie %d still detached", ErrGridCorrupt, c.ID)
		}
	}
	return nil
}

// Equal reports whether both grids hold every cubie at the same position and
// orientation.
func (g *Grid) Equal(o *Grid) bool {
	for i := range g.cubies {
		if g.cubies[i].Position != o.cubies[i].Position ||
			g.cubies[i].Orientation != o.cubies[i].Orientation {
			return false
		}
	}
	return true
}

// Apply commits moves immediately, without animation.
func (g *Grid) Apply(moves ...Move) error {
	for _, m := range moves {
		if !m.Valid() {
			return fmt.Errorf("%w: %+v", ErrInvalidMove, m)
		}
		layer, err := g.BeginLayer(m.Axis, m.Slice)
		if err != nil {
			return err
		}
		if err := g.commitLayer(layer, m, g.capture(layer)); err != nil {
			return err
		}
	}
	return nil
}

// Facelets returns the visible sticker colors as an unfolded net, indexed
// by side. Each side's 9 facelets are numbered as seen from outside:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Up is viewed with Front at the bottom, Down with Front at the top and the
// four side faces with Up at the top.
func (g *Grid) Facelets() [6][9]Color {
	var out [6][9]Color
	owners := g.FaceletOwners()
	for _, side := range Sides {
		for i, id := range owners[side] {
			if id >= 0 {
				out[side][i] = g.cubies[id].ColorFacing(side.Normal())
			}
		}
	}
	return out
}

// FaceletOwners returns the ID of the cubie carrying each facelet, in the
// layout of Facelets. A slot no cubie occupies holds -1.
func (g *Grid) FaceletOwners() [6][9]int {
	var out [6][9]int
	for _, side := range Sides {
		n := side.Normal()
		right, down := netBasis(side)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				pos := n.Add(scale(right, col-1)).Add(scale(down, row-1))
				out[side][row*3+col] = -1
				if c, ok := g.At(pos); ok {
					out[side][row*3+col] = c.ID
				}
			}
		}
	}
	return out
}

// netBasis returns the directions of increasing column and row for a side.
func netBasis(s Side) (right, down Vec3) {
	switch s {
	case SidePosY:
		return Vec3{X: 1}, Vec3{Z: 1}
	case SideNegY:
		return Vec3{X: 1}, Vec3{Z: -1}
	case SidePosZ:
		return Vec3{X: 1}, Vec3{Y: -1}
	case SideNegZ:
		return Vec3{X: -1}, Vec3{Y: -1}
	case SidePosX:
		return Vec3{Z: -1}, Vec3{Y: -1}
	default:
		return Vec3{Z: 1}, Vec3{Y: -1}
	}
}

func scale(v Vec3, k int) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// IsSolved returns true if every face shows a single color.
func (g *Grid) IsSolved() bool {
	faces := g.Facelets()
	for _, side := range Sides {
		for i := 1; i < 9; i++ {
			if faces[side][i] != faces[side][0] {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the cube.
func (g *Grid) String() string {
	faces := g.Facelets()
	var b strings.Builder

	row := func(side Side, r int) {
		for col := 0; col < 3; col++ {
			b.WriteString(faces[side][r*3+col].String())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(SidePosY, r)
		b.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for r := 0; r < 3; r++ {
		for _, side := range []Side{SideNegX, SidePosZ, SidePosX, SideNegZ} {
			row(side, r)
		}
		b.WriteByte('\n')
	}

	// D face (indented)
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(SideNegY, r)
		b.WriteByte('\n')
	}

	return b.String()
}
