package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseSolved(t *testing.T) {
	c := NewCube()
	assert.Equal(t, PhaseSolved, c.Phase())
	assert.Equal(t, Progress{
		WhiteCross:     true,
		FirstLayer:     true,
		SecondLayer:    true,
		YellowCross:    true,
		YellowCorners:  true,
		YellowOriented: true,
		Solved:         true,
	}, c.GetProgress())
}

func TestPhaseDetection(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  Phase
	}{
		{"top layer turned", "U", PhaseYellowCross},
		{"top layer half turned", "U U", PhaseYellowCross},
		{"bottom layer turned", "D", PhaseScrambled},
		{"right layer turned", "R", PhaseScrambled},
		{"sexy move keeps the cross", "R U R' U'", PhaseWhiteCross},
		{"back to solved", "R R'", PhaseSolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			moves, err := ParseMoves(tt.moves)
			assert.NoError(t, err)
			assert.NoError(t, c.Apply(moves...))
			assert.Equal(t, tt.want, c.Phase())
		})
	}
}

func TestPhaseIgnoresTurnInFlight(t *testing.T) {
	c := NewCube(WithTurnStep(45))
	c.StartTurn(AxisX, 1, -1)
	c.Tick()
	assert.Equal(t, PhaseSolved, c.Phase())
	c.Tick()
	assert.Equal(t, PhaseScrambled, c.Phase())
}

func TestPositionedCornerTwisted(t *testing.T) {
	c := NewCube()
	slot := GridPos{1, -1, 1}
	for _, cb := range c.cubies {
		if cb.Pos == slot {
			old := cb.Faces
			cb.Faces[FaceR] = old[FaceF]
			cb.Faces[FaceD] = old[FaceR]
			cb.Faces[FaceF] = old[FaceD]
		}
	}

	assert.True(t, c.positioned(slot))
	assert.False(t, c.home(slot))
	assert.True(t, c.GetProgress().WhiteCross)
	assert.False(t, c.GetProgress().FirstLayer)
	assert.Equal(t, PhaseWhiteCross, c.Phase())

	assert.NoError(t, c.Apply(U))
	assert.False(t, c.positioned(GridPos{1, 1, 1}))
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "white_cross", PhaseWhiteCross.String())
	assert.Equal(t, "Yellow Cross", PhaseYellowCross.DisplayName())
	assert.Equal(t, "unknown", Phase(42).String())
	assert.True(t, PhaseFirstLayer < PhaseSecondLayer)
}

func TestTracker(t *testing.T) {
	c := NewCube()
	tr := NewTracker(c)
	assert.Equal(t, PhaseSolved, tr.HighestPhase())

	var reached []Phase
	tr.SetPhaseCallback(func(p Phase) { reached = append(reached, p) })

	assert.NoError(t, c.Apply(U))
	assert.Equal(t, PhaseYellowCross, tr.CurrentPhase())
	assert.Empty(t, reached, "no new high from solved")

	tr.Reset()
	assert.Equal(t, PhaseYellowCross, tr.HighestPhase())

	assert.NoError(t, c.Apply(R))
	assert.Equal(t, PhaseScrambled, tr.CurrentPhase())
	assert.NoError(t, c.Apply(RPrime))
	assert.Empty(t, reached, "regaining the old high does not fire")

	assert.NoError(t, c.Apply(UPrime))
	assert.Equal(t, []Phase{PhaseSolved}, reached)
	assert.True(t, tr.GetProgress().Solved)
}
