package gocube

// Phase is a stage of the layer-by-layer method, which builds the white
// layer on D first and finishes on the yellow U face. Phases are ordered
// from Scrambled to Solved, so they compare with < and >.
type Phase int

const (
	// PhaseScrambled indicates no phase is complete.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the four D edges are home and oriented.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the whole D layer is home and oriented.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the four middle layer edges are home.
	PhaseSecondLayer

	// PhaseYellowCross indicates the four U edges show yellow on U.
	PhaseYellowCross

	// PhaseYellowCorners indicates the U corners sit in their slots,
	// possibly twisted.
	PhaseYellowCorners

	// PhaseYellowOriented indicates the U corners are home and oriented.
	PhaseYellowOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners Positioned"
	case PhaseYellowOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Progress represents which phases are complete.
type Progress struct {
	WhiteCross     bool
	FirstLayer     bool
	SecondLayer    bool
	YellowCross    bool
	YellowCorners  bool
	YellowOriented bool
	Solved         bool
}

var (
	downEdges   = []GridPos{{0, -1, 1}, {1, -1, 0}, {0, -1, -1}, {-1, -1, 0}}
	downCorners = []GridPos{{1, -1, 1}, {1, -1, -1}, {-1, -1, -1}, {-1, -1, 1}}
	middleEdges = []GridPos{{1, 0, 1}, {1, 0, -1}, {-1, 0, -1}, {-1, 0, 1}}
	upEdges     = []GridPos{{0, 1, 1}, {1, 1, 0}, {0, 1, -1}, {-1, 1, 0}}
	upCorners   = []GridPos{{1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {-1, 1, 1}}
)

// home reports whether the cubie in slot p shows the solved color on every
// outer face.
func (c *Cube) home(p GridPos) bool {
	cb, ok := c.At(p)
	if !ok {
		return false
	}
	for _, f := range Faces {
		if cb.Visible(f) && cb.Faces[f] != SolvedColor(f) {
			return false
		}
	}
	return true
}

// positioned reports whether the cubie in slot p belongs there, ignoring
// its twist. A cubie's home slot is read back from the colors it shows.
func (c *Cube) positioned(p GridPos) bool {
	cb, ok := c.At(p)
	if !ok {
		return false
	}
	var origin GridPos
	for _, f := range Faces {
		if !cb.Visible(f) {
			continue
		}
		for _, g := range Faces {
			if SolvedColor(g) == cb.Faces[f] {
				origin[g.Axis()] = g.Sign()
			}
		}
	}
	return origin == p
}

func (c *Cube) allHome(slots []GridPos) bool {
	for _, p := range slots {
		if !c.home(p) {
			return false
		}
	}
	return true
}

// GetProgress returns the current progress through all phases. Each phase
// requires the ones before it.
func (c *Cube) GetProgress() Progress {
	var p Progress
	p.WhiteCross = c.allHome(downEdges)
	p.FirstLayer = p.WhiteCross && c.allHome(downCorners)
	p.SecondLayer = p.FirstLayer && c.allHome(middleEdges)

	p.YellowCross = p.SecondLayer
	for _, e := range upEdges {
		if cb, ok := c.At(e); !ok || cb.Faces[FaceU] != SolvedColor(FaceU) {
			p.YellowCross = false
		}
	}

	p.YellowCorners = p.YellowCross
	for _, corner := range upCorners {
		if !c.positioned(corner) {
			p.YellowCorners = false
		}
	}

	p.YellowOriented = p.YellowCorners && c.allHome(upCorners)
	p.Solved = c.IsSolved()
	return p
}

// Phase returns the furthest completed phase of the committed state.
func (c *Cube) Phase() Phase {
	p := c.GetProgress()
	switch {
	case p.Solved:
		return PhaseSolved
	case p.YellowOriented:
		return PhaseYellowOriented
	case p.YellowCorners:
		return PhaseYellowCorners
	case p.YellowCross:
		return PhaseYellowCross
	case p.SecondLayer:
		return PhaseSecondLayer
	case p.FirstLayer:
		return PhaseFirstLayer
	case p.WhiteCross:
		return PhaseWhiteCross
	}
	return PhaseScrambled
}
