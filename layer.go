package cubeanim

import (
	"fmt"
	"math"
)

// Pose is a cubie's position and orientation on the grid.
type Pose struct {
	Position    Vec3
	Orientation Rotation
}

// Pivot is the transient rotation anchor of a detached layer. It sits on the
// rotation axis at the layer's plane.
type Pivot struct {
	Axis   Axis
	Offset Vec3
	Angle  float64 // radians, about Axis
}

// Transform returns the pivot's current rotation matrix.
func (p Pivot) Transform() Mat3 {
	return RotationAbout(p.Axis, p.Angle)
}

// Layer is a set of cubies detached from the grid's static set and attached
// to a pivot for the length of one animation session.
type Layer struct {
	session  int
	slice    int
	pivot    Pivot
	members  []int
	relative map[int]Vec3
}

// Session returns the animation session that owns the layer's cubies.
func (l *Layer) Session() int {
	return l.session
}

// Slice returns the layer index along the pivot axis.
func (l *Layer) Slice() int {
	return l.slice
}

// Pivot returns the layer's pivot.
func (l *Layer) Pivot() Pivot {
	return l.pivot
}

// Members returns the IDs of the detached cubies.
func (l *Layer) Members() []int {
	out := make([]int, len(l.members))
	copy(out, l.members)
	return out
}

// Contains reports whether cubie id belongs to the layer.
func (l *Layer) Contains(id int) bool {
	_, ok := l.relative[id]
	return ok
}

// Relative returns a member's position relative to the pivot.
func (l *Layer) Relative(id int) (Vec3, bool) {
	v, ok := l.relative[id]
	return v, ok
}

// worldPosition returns where a member currently is, with the pivot rotated
// by its current angle.
func (l *Layer) worldPosition(id int) Vec3f {
	return l.pivot.Transform().Apply(l.relative[id].Float()).Add(l.pivot.Offset.Float())
}

// BeginLayer detaches the outer layer at slice along axis and attaches it to
// a new pivot. Exactly nine static cubies must be selected; anything else is
// reported as a *LayerSelectionFault and the grid is left untouched.
func (g *Grid) BeginLayer(axis Axis, slice int) (*Layer, error) {
	if !axis.Valid() || (slice != 1 && slice != -1) {
		return nil, fmt.Errorf("%w: %s=%d", ErrInvalidSlice, axis, slice)
	}

	ids := g.Select(axis, slice)
	if len(ids) != LayerSize {
		return nil, &LayerSelectionFault{
			Axis:   axis,
			Slice:  slice,
			Count:  len(ids),
			Reason: fmt.Sprintf("expected %d cubies", LayerSize),
		}
	}
	for _, id := range ids {
		if g.cubies[id].container != staticContainer {
			return nil, &LayerSelectionFault{
				Axis:   axis,
				Slice:  slice,
				Count:  len(ids),
				Reason: fmt.Sprintf("cubie %d already detached", id),
			}
		}
	}

	g.lastSession++
	offset := Vec3{}.WithComponent(axis, slice)
	layer := &Layer{
		session:  g.lastSession,
		slice:    slice,
		pivot:    Pivot{Axis: axis, Offset: offset},
		members:  ids,
		relative: make(map[int]Vec3, len(ids)),
	}
	for _, id := range ids {
		g.cubies[id].container = layer.session
		layer.relative[id] = g.cubies[id].Position.Sub(offset)
	}
	return layer, nil
}

// EndLayer returns every member of the layer to the grid's static set.
func (g *Grid) EndLayer(l *Layer) {
	for _, id := range l.members {
		if g.cubies[id].container == l.session {
			g.cubies[id].container = staticContainer
		}
	}
}

// capture records the pre-rotation pose of every member.
func (g *Grid) capture(l *Layer) map[int]Pose {
	poses := make(map[int]Pose, len(l.members))
	for _, id := range l.members {
		poses[id] = Pose{Position: g.cubies[id].Position, Orientation: g.cubies[id].Orientation}
	}
	return poses
}

// commitLayer lands every member of l a quarter turn about the pivot axis in
// direction m.Direction, then reattaches them to the static set. Landing poses
// are computed from the captured pre-rotation poses, never from the animated
// angle, and positions are rounded to strip floating point drift.
func (g *Grid) commitLayer(l *Layer, m Move, pre map[int]Pose) error {
	exact := RotationAbout(l.pivot.Axis, float64(m.Direction)*math.Pi/2)
	turn := QuarterTurn(l.pivot.Axis, m.Direction)
	offset := l.pivot.Offset

	landed := make(map[int]Pose, len(l.members))
	for _, id := range l.members {
		p := pre[id]
		pos := exact.Apply(p.Position.Sub(offset).Float()).Add(offset.Float()).Round()
		if !pos.OnGrid() {
			g.EndLayer(l)
			return fmt.Errorf("%w: cubie %d would land off grid at %s", ErrGridCorrupt, id, pos)
		}
		landed[id] = Pose{Position: pos, Orientation: turn.Mul(p.Orientation)}
	}
	for id, p := range landed {
		if err := g.place(id, p.Position, p.Orientation); err != nil {
			g.EndLayer(l)
			return err
		}
	}
	g.EndLayer(l)
	return nil
}
