package gocube

import "math"

// gestureRule maps a screen drag on one axis's faces to a turn sign.
// Screen Y grows downward, so "down" is a positive dy.
type gestureRule struct {
	// verticalFirst makes the vertical component win only when strictly
	// larger; otherwise the horizontal component wins only when strictly
	// larger. Ties go to the other component.
	verticalFirst bool

	right, left int // dx > 0, dx <= 0
	down, up    int // dy > 0, dy <= 0
}

func (r gestureRule) sign(dx, dy float64) int {
	ax, ay := math.Abs(dx), math.Abs(dy)
	horizontal := ax > ay
	if r.verticalFirst {
		horizontal = !(ay > ax)
	}
	if horizontal {
		if dx > 0 {
			return r.right
		}
		return r.left
	}
	if dy > 0 {
		return r.down
	}
	return r.up
}

// gestureRules is indexed by the picked face's axis, for layer 1. Layer -1
// flips the sign. This is a screen-space heuristic and can turn the "wrong"
// way when the cube is seen from an oblique angle.
var gestureRules = [3]gestureRule{
	AxisX: {verticalFirst: true, down: 1, up: -1, right: -1, left: 1},
	AxisY: {right: 1, left: -1, down: 1, up: -1},
	AxisZ: {right: 1, left: -1, down: -1, up: 1},
}

// ResolveGesture converts a drag delta on a picked face into a turn
// direction, 1 or -1. It returns 0 only for a malformed pick.
func ResolveGesture(pick FacePick, dx, dy float64) int {
	if !pick.Axis.Valid() || !validLayer(pick.Layer) {
		return 0
	}
	dir := gestureRules[pick.Axis].sign(dx, dy)
	if pick.Layer != 1 {
		dir = -dir
	}
	return dir
}
