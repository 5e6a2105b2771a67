package cubeanim

import (
	"fmt"
	"math"
)

// Vec3 is an integer grid coordinate. At rest every component is -1, 0 or 1.
type Vec3 struct {
	X, Y, Z int
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Component returns the coordinate along axis.
func (v Vec3) Component(axis Axis) int {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns v with the coordinate along axis replaced.
func (v Vec3) WithComponent(axis Axis, value int) Vec3 {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// Float converts v to floating point.
func (v Vec3) Float() Vec3f {
	return Vec3f{float64(v.X), float64(v.Y), float64(v.Z)}
}

// OnGrid reports whether every component is in {-1, 0, 1}.
func (v Vec3) OnGrid() bool {
	in := func(c int) bool { return c >= -1 && c <= 1 }
	return in(v.X) && in(v.Y) && in(v.Z)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Vec3f is a world-space position used while a layer is mid-rotation.
type Vec3f struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Round snaps v to the nearest integer grid point.
func (v Vec3f) Round() Vec3 {
	return Vec3{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}

// Rotation is an exact rotation made of quarter turns, stored as an integer
// 3x3 matrix. Composing quarter turns never accumulates error.
type Rotation [3][3]int

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rotation {
	return Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// QuarterTurn returns the rotation of direction*90 degrees about axis,
// following the right-hand rule.
func QuarterTurn(axis Axis, direction int) Rotation {
	s := direction
	switch axis {
	case AxisX:
		return Rotation{{1, 0, 0}, {0, 0, -s}, {0, s, 0}}
	case AxisY:
		return Rotation{{0, 0, s}, {0, 1, 0}, {-s, 0, 0}}
	default:
		return Rotation{{0, -s, 0}, {s, 0, 0}, {0, 0, 1}}
	}
}

// Mul returns r*o, the rotation that applies o first and then r.
func (r Rotation) Mul(o Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[i][0]*o[0][j] + r[i][1]*o[1][j] + r[i][2]*o[2][j]
		}
	}
	return out
}

// Apply rotates v.
func (r Rotation) Apply(v Vec3) Vec3 {
	return Vec3{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// Transpose returns the inverse rotation.
func (r Rotation) Transpose() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[j][i]
		}
	}
	return out
}

// Float converts r to a floating point matrix.
func (r Rotation) Float() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = float64(r[i][j])
		}
	}
	return out
}

// Mat3 is a floating point rotation matrix for display transforms.
type Mat3 [3][3]float64

// RotationAbout returns the rotation of angle radians about axis.
func RotationAbout(axis Axis, angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	switch axis {
	case AxisX:
		return Mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
	case AxisY:
		return Mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
	default:
		return Mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
	}
}

// Mul returns m*o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return out
}

// Apply rotates v.
func (m Mat3) Apply(v Vec3f) Vec3f {
	return Vec3f{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
