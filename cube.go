package gocube

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// TurnState describes a quarter turn in flight.
type TurnState struct {
	Axis      Axis
	Layer     int
	Direction int
	Angle     float64 // degrees turned so far, 0..90
}

// Move returns the quarter turn the state is animating.
func (t TurnState) Move() Move {
	return Move{Axis: t.Axis, Layer: t.Layer, Direction: t.Direction}
}

// Cube is the 3x3x3 puzzle: 27 cubies and a turn state machine.
//
// The cube is either idle or turning one outer layer. A turn is started with
// StartTurn, animated by Tick and committed when its angle reaches 90
// degrees. Only then do the nine cubies of the layer change position and
// stickers.
type Cube struct {
	cubies   []*Cubie
	turn     TurnState
	turning  bool
	step     float64
	onCommit []func(Move)
}

// NewCube creates a solved cube. Only WithTurnStep affects a bare cube.
func NewCube(opts ...Option) *Cube {
	cfg := newConfig(opts)
	c := &Cube{step: cfg.turnStep}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state and cancels any turn in flight.
// Commit hooks are kept.
func (c *Cube) Reset() {
	c.cubies = make([]*Cubie, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				c.cubies = append(c.cubies, newCubie(GridPos{x, y, z}))
			}
		}
	}
	c.turn = TurnState{}
	c.turning = false
}

// OnCommit registers fn to be called after every committed quarter turn,
// animated or applied directly.
func (c *Cube) OnCommit(fn func(Move)) {
	c.onCommit = append(c.onCommit, fn)
}

// IsTurning reports whether a turn is in flight.
func (c *Cube) IsTurning() bool {
	return c.turning
}

// Turn returns the turn in flight. ok is false while idle.
func (c *Cube) Turn() (ts TurnState, ok bool) {
	if !c.turning {
		return TurnState{}, false
	}
	return c.turn, true
}

// TurnStep returns the degrees added per Tick.
func (c *Cube) TurnStep() float64 {
	return c.step
}

// StartTurn begins animating a quarter turn of the given layer.
// The request is ignored, and false returned, while another turn is in
// flight or when layer or dir is not 1 or -1. Requests are never queued.
func (c *Cube) StartTurn(axis Axis, layer, dir int) bool {
	if c.turning {
		return false
	}
	if !axis.Valid() || !validLayer(layer) || !validDirection(dir) {
		return false
	}
	c.turn = TurnState{Axis: axis, Layer: layer, Direction: dir}
	c.turning = true
	return true
}

// Tick advances the turn in flight by one step. When the angle reaches 90
// degrees the turn is committed and Tick returns true. Idle ticks do nothing.
func (c *Cube) Tick() bool {
	if !c.turning {
		return false
	}
	c.turn.Angle += c.step
	if c.turn.Angle < 90 {
		return false
	}
	c.turn.Angle = 90
	c.turning = false
	c.commit(c.turn.Move())
	return true
}

// commit rotates the nine cubies of the move's layer and fires hooks.
func (c *Cube) commit(m Move) {
	for _, cb := range c.cubies {
		if cb.Pos[m.Axis] == m.Layer {
			cb.Rotate(m.Axis, m.Direction)
		}
	}
	for _, fn := range c.onCommit {
		fn(m)
	}
}

// Apply commits moves immediately, without animation.
// It fails with ErrTurnInProgress while a turn is in flight and with
// ErrInvalidMove if any move is malformed; in both cases nothing is applied.
func (c *Cube) Apply(moves ...Move) error {
	if c.turning {
		return ErrTurnInProgress
	}
	for _, m := range moves {
		if !m.Valid() {
			return fmt.Errorf("%w: %+v", ErrInvalidMove, m)
		}
	}
	for _, m := range moves {
		c.commit(m)
	}
	return nil
}

// Cubies returns a copy of every cubie.
func (c *Cube) Cubies() []Cubie {
	out := make([]Cubie, len(c.cubies))
	for i, cb := range c.cubies {
		out[i] = *cb
	}
	return out
}

// At returns a copy of the cubie currently at p.
func (c *Cube) At(p GridPos) (Cubie, bool) {
	for _, cb := range c.cubies {
		if cb.Pos == p {
			return *cb, true
		}
	}
	return Cubie{}, false
}

// Clone creates a deep copy of the cube, including the turn in flight.
// Commit hooks are not copied.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		cubies:  make([]*Cubie, len(c.cubies)),
		turn:    c.turn,
		turning: c.turning,
		step:    c.step,
	}
	for i, cb := range c.cubies {
		cp := *cb
		clone.cubies[i] = &cp
	}
	return clone
}

// Equal reports whether both cubes have the same cubie at every position
// with the same stickers. Turn state is not compared.
func (c *Cube) Equal(other *Cube) bool {
	if len(c.cubies) != len(other.cubies) {
		return false
	}
	theirs := other.byPos()
	for _, cb := range c.cubies {
		o, ok := theirs[cb.Pos]
		if !ok || o.Faces != cb.Faces {
			return false
		}
	}
	return true
}

func (c *Cube) byPos() map[GridPos]*Cubie {
	m := make(map[GridPos]*Cubie, len(c.cubies))
	for _, cb := range c.cubies {
		m[cb.Pos] = cb
	}
	return m
}

// CubieDraw is what a renderer needs to draw one cubie this frame.
type CubieDraw struct {
	Pos     GridPos
	Faces   [6]Color
	Turning bool    // part of the layer in flight
	Axis    Axis    // turn axis, valid when Turning
	Angle   float64 // signed degrees (angle * direction), valid when Turning
}

// Model returns the cubie's model matrix: the turn rotation, if any, applied
// after translating the cubie to its lattice slot.
func (d CubieDraw) Model(g Geometry) mgl64.Mat4 {
	s := g.Spacing()
	t := mgl64.Translate3D(float64(d.Pos[0])*s, float64(d.Pos[1])*s, float64(d.Pos[2])*s)
	if !d.Turning {
		return t
	}
	return axisRotation(d.Axis, d.Angle).Mul4(t)
}

// DrawState returns the draw data for all 27 cubies. Positions are the
// committed ones; the nine cubies of a turning layer carry the extra rotation.
func (c *Cube) DrawState() []CubieDraw {
	out := make([]CubieDraw, len(c.cubies))
	for i, cb := range c.cubies {
		d := CubieDraw{Pos: cb.Pos, Faces: cb.Faces}
		if c.turning && cb.Pos[c.turn.Axis] == c.turn.Layer {
			d.Turning = true
			d.Axis = c.turn.Axis
			d.Angle = c.turn.Angle * float64(c.turn.Direction)
		}
		out[i] = d
	}
	return out
}

// IsSolved returns true if every outer face shows a single color.
func (c *Cube) IsSolved() bool {
	facelets := c.Facelets()
	for _, f := range Faces {
		for i := 1; i < 9; i++ {
			if facelets[f][i] != facelets[f][0] {
				return false
			}
		}
	}
	return true
}

// faceletPos returns the lattice position of facelet idx on face f.
// Each face is laid out as seen from outside, in an unfolded net:
//
//	0 1 2
//	3 4 5
//	6 7 8
func faceletPos(f Face, idx int) GridPos {
	r, col := idx/3, idx%3
	switch f {
	case FaceU:
		return GridPos{col - 1, 1, r - 1}
	case FaceD:
		return GridPos{col - 1, -1, 1 - r}
	case FaceF:
		return GridPos{col - 1, 1 - r, 1}
	case FaceB:
		return GridPos{1 - col, 1 - r, -1}
	case FaceR:
		return GridPos{1, 1 - r, 1 - col}
	default:
		return GridPos{-1, 1 - r, col - 1}
	}
}

// Facelets returns the visible sticker colors of each face.
// Facelets()[face][position] = color
func (c *Cube) Facelets() [6][9]Color {
	var out [6][9]Color
	pos := c.byPos()
	for _, f := range Faces {
		for i := 0; i < 9; i++ {
			cb, ok := pos[faceletPos(f, i)]
			if !ok {
				out[f][i] = NoColor
				continue
			}
			out[f][i] = cb.Faces[f]
		}
	}
	return out
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	facelets := c.Facelets()
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(facelets[FaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(facelets[FaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
