package gocube

// Cubie is one of the 27 unit cubes of the puzzle.
type Cubie struct {
	Pos GridPos

	// Faces[face] = color currently pointing in that direction
	Faces [6]Color
}

// newCubie creates a fully stickered cubie in the solved orientation.
func newCubie(p GridPos) *Cubie {
	c := &Cubie{Pos: p}
	for _, f := range Faces {
		c.Faces[f] = SolvedColor(f)
	}
	return c
}

// faceCycles holds, per axis, the four faces a positive quarter turn about
// that axis carries into one another: cycle[i] moves to cycle[i+1].
var faceCycles = [3][4]Face{
	AxisX: {FaceU, FaceF, FaceD, FaceB},
	AxisY: {FaceF, FaceR, FaceB, FaceL},
	AxisZ: {FaceR, FaceU, FaceL, FaceD},
}

// Rotate applies a quarter turn about axis to the cubie. Position and
// stickers are updated together.
func (c *Cubie) Rotate(axis Axis, dir int) {
	c.Pos = c.Pos.Rotate(axis, dir)
	c.rotateStickers(axis, dir)
}

// rotateStickers cycles the four faces orthogonal to axis.
func (c *Cubie) rotateStickers(axis Axis, dir int) {
	cycle := faceCycles[axis]
	old := c.Faces
	for i, from := range cycle {
		to := cycle[(i+dir+4)%4]
		c.Faces[to] = old[from]
	}
}

// Visible reports whether face f of the cubie lies on the outside of the cube.
func (c *Cubie) Visible(f Face) bool {
	return c.Pos[f.Axis()] == f.Sign()
}
