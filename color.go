package gocube

// Color represents a sticker color.
type Color byte

const (
	White   Color = 0 // Down face when solved
	Yellow  Color = 1 // Up face when solved
	Green   Color = 2 // Front face when solved
	Blue    Color = 3 // Back face when solved
	Red     Color = 4 // Right face when solved
	Orange  Color = 5 // Left face when solved
	NoColor Color = 6 // Unstickered face
)

func (c Color) String() string {
	switch c {
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

// Hex returns the sticker color as a #rrggbb string.
func (c Color) Hex() string {
	switch c {
	case White:
		return "#ffffff"
	case Yellow:
		return "#ffff00"
	case Green:
		return "#00ff00"
	case Blue:
		return "#0000ff"
	case Red:
		return "#ff0000"
	case Orange:
		return "#ff8000"
	default:
		return "#000000"
	}
}

// Face is one of the six outward directions of a cubie.
type Face int

const (
	FaceU Face = 0 // Up (+Y)
	FaceD Face = 1 // Down (-Y)
	FaceF Face = 2 // Front (+Z)
	FaceB Face = 3 // Back (-Z)
	FaceR Face = 4 // Right (+X)
	FaceL Face = 5 // Left (-X)
)

// Faces lists the six faces in index order.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Axis returns the axis the face is perpendicular to.
func (f Face) Axis() Axis {
	switch f {
	case FaceU, FaceD:
		return AxisY
	case FaceF, FaceB:
		return AxisZ
	default:
		return AxisX
	}
}

// Sign returns 1 if the face points along the positive axis, -1 otherwise.
func (f Face) Sign() int {
	switch f {
	case FaceU, FaceF, FaceR:
		return 1
	default:
		return -1
	}
}

// Normal returns the unit outward normal of the face as a lattice vector.
func (f Face) Normal() GridPos {
	var n GridPos
	n[f.Axis()] = f.Sign()
	return n
}

// FaceOf returns the face perpendicular to axis on the side given by sign.
func FaceOf(axis Axis, sign int) Face {
	switch axis {
	case AxisX:
		if sign > 0 {
			return FaceR
		}
		return FaceL
	case AxisY:
		if sign > 0 {
			return FaceU
		}
		return FaceD
	default:
		if sign > 0 {
			return FaceF
		}
		return FaceB
	}
}

// SolvedColor returns the sticker color a face shows on a solved cube.
func SolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return Yellow
	case FaceD:
		return White
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return NoColor
	}
}
