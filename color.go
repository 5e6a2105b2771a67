package cubeanim

// Color represents a sticker color. ColorNone marks an interior side that is
// not part of the cube's surface.
type Color byte

const (
	ColorNone Color = iota // Interior, no sticker
	White                  // Up face when solved
	Yellow                 // Down face when solved
	Green                  // Front face when solved
	Blue                   // Back face when solved
	Red                    // Right face when solved
	Orange                 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "."
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Side indexes the six color slots of a cubie, in the fixed order
// +X, -X, +Y, -Y, +Z, -Z.
type Side int

const (
	SidePosX Side = iota // Right
	SideNegX             // Left
	SidePosY             // Up
	SideNegY             // Down
	SidePosZ             // Front
	SideNegZ             // Back
)

// Sides lists every side in slot order.
var Sides = [6]Side{SidePosX, SideNegX, SidePosY, SideNegY, SidePosZ, SideNegZ}

// Normal returns the outward unit vector of the side.
func (s Side) Normal() Vec3 {
	switch s {
	case SidePosX:
		return Vec3{X: 1}
	case SideNegX:
		return Vec3{X: -1}
	case SidePosY:
		return Vec3{Y: 1}
	case SideNegY:
		return Vec3{Y: -1}
	case SidePosZ:
		return Vec3{Z: 1}
	default:
		return Vec3{Z: -1}
	}
}

// Face returns the notation face lying on this side of the cube.
func (s Side) Face() Face {
	switch s {
	case SidePosX:
		return FaceR
	case SideNegX:
		return FaceL
	case SidePosY:
		return FaceU
	case SideNegY:
		return FaceD
	case SidePosZ:
		return FaceF
	default:
		return FaceB
	}
}

func (s Side) String() string {
	return string(s.Face())
}

// sideFromNormal maps a unit axis vector back to its side.
func sideFromNormal(n Vec3) Side {
	switch {
	case n.X > 0:
		return SidePosX
	case n.X < 0:
		return SideNegX
	case n.Y > 0:
		return SidePosY
	case n.Y < 0:
		return SideNegY
	case n.Z > 0:
		return SidePosZ
	default:
		return SideNegZ
	}
}

// solvedColor returns the sticker color of a side when solved:
// White on top, Green in front.
func solvedColor(s Side) Color {
	switch s {
	case SidePosX:
		return Red
	case SideNegX:
		return Orange
	case SidePosY:
		return White
	case SideNegY:
		return Yellow
	case SidePosZ:
		return Green
	default:
		return Blue
	}
}
