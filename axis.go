package gocube

// Axis is one of the three principal axes of the cube lattice.
type Axis uint8

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// Axes lists every axis in index order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Valid reports whether a is one of AxisX, AxisY or AxisZ.
func (a Axis) Valid() bool {
	return a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// ParseAxis converts "x", "y" or "z" into an Axis.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return 0, false
}

// GridPos is an integer lattice coordinate, each component in {-1, 0, 1}.
// It is indexed by Axis: p[AxisY] is the y component.
type GridPos [3]int

// Rotate returns p rotated a quarter turn about axis. dir 1 is a positive
// right-handed rotation, dir -1 the inverse.
func (p GridPos) Rotate(axis Axis, dir int) GridPos {
	x, y, z := p[0], p[1], p[2]
	switch axis {
	case AxisX:
		return GridPos{x, -dir * z, dir * y}
	case AxisY:
		return GridPos{dir * z, y, -dir * x}
	case AxisZ:
		return GridPos{-dir * y, dir * x, z}
	}
	return p
}

// validLayer reports whether l selects an outer slice.
func validLayer(l int) bool {
	return l == 1 || l == -1
}

// validDirection reports whether d is a quarter-turn sign.
func validDirection(d int) bool {
	return d == 1 || d == -1
}
