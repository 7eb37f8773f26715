package gocube

import (
	"math/rand"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
		t.Log(c.String())
	}
	if len(c.Cubies()) != 27 {
		t.Errorf("expected 27 cubies, got %d", len(c.Cubies()))
	}
	if c.IsTurning() {
		t.Error("New cube should be idle")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	if err := c.Apply(R); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRMovesFrontStickersUp(t *testing.T) {
	c := NewCube()
	c.Apply(R)
	f := c.Facelets()
	for _, i := range []int{2, 5, 8} {
		if f[FaceU][i] != Green {
			t.Errorf("U[%d] = %v after R, want G", i, f[FaceU][i])
		}
		if f[FaceF][i] != White {
			t.Errorf("F[%d] = %v after R, want W", i, f[FaceF][i])
		}
	}
	if f[FaceR][4] != Red {
		t.Errorf("R centre = %v, want R", f[FaceR][4])
	}
	if t.Failed() {
		t.Log(c.String())
	}
}

func TestFourQuarterTurns_ReturnToStart_AllMoves(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.Apply(m, m, m, m)
		if !c.Equal(NewCube()) {
			t.Errorf("%v x 4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverse_RestoresState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	scramble := randomMoves(rng, 25)

	for _, m := range AllMoves {
		c := NewCube()
		c.Apply(scramble...)
		before := c.Clone()

		c.Apply(m, m.Inverse())
		if !c.Equal(before) {
			t.Errorf("%v then %v should restore the state", m, m.Inverse())
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() || !c.Equal(NewCube()) {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	scramble := randomMoves(rng, 40)

	c := NewCube()
	c.Apply(scramble...)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}

	c.Apply(InverseMoves(scramble)...)
	if !c.Equal(NewCube()) {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestOppositeLayersCommute(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	scramble := randomMoves(rng, 20)

	for _, axis := range Axes {
		for _, d1 := range []int{1, -1} {
			for _, d2 := range []int{1, -1} {
				a := Move{Axis: axis, Layer: 1, Direction: d1}
				b := Move{Axis: axis, Layer: -1, Direction: d2}

				ab := NewCube()
				ab.Apply(scramble...)
				ab.Apply(a, b)

				ba := NewCube()
				ba.Apply(scramble...)
				ba.Apply(b, a)

				if !ab.Equal(ba) {
					t.Errorf("%v %v and %v %v should commute", a, b, b, a)
				}
			}
		}
	}
}

func TestPermutationClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	c := NewCube()

	var solved [27]GridPos
	for i, cb := range NewCube().Cubies() {
		solved[i] = cb.Pos
	}

	for step := 0; step < 200; step++ {
		c.Apply(AllMoves[rng.Intn(len(AllMoves))])

		seen := make(map[GridPos]bool)
		for _, cb := range c.Cubies() {
			if seen[cb.Pos] {
				t.Fatalf("step %d: two cubies at %v", step, cb.Pos)
			}
			seen[cb.Pos] = true
			assertStickerSet(t, cb)
		}
		for _, p := range solved {
			if !seen[p] {
				t.Fatalf("step %d: no cubie at %v", step, p)
			}
		}

		counts := make(map[Color]int)
		for _, face := range c.Facelets() {
			for _, col := range face {
				counts[col]++
			}
		}
		for _, f := range Faces {
			if counts[SolvedColor(f)] != 9 {
				t.Fatalf("step %d: %v shows on %d facelets", step, SolvedColor(f), counts[SolvedColor(f)])
			}
		}
	}
}

// assertStickerSet checks the cubie still carries each color exactly once
// and that opposite faces still carry opposite colors.
func assertStickerSet(t *testing.T, cb Cubie) {
	t.Helper()
	have := make(map[Color]bool)
	for _, col := range cb.Faces {
		if have[col] {
			t.Fatalf("cubie at %v has %v twice: %v", cb.Pos, col, cb.Faces)
		}
		have[col] = true
	}
	opposite := map[Color]Color{
		Yellow: White, White: Yellow,
		Green: Blue, Blue: Green,
		Red: Orange, Orange: Red,
	}
	pairs := [][2]Face{{FaceU, FaceD}, {FaceF, FaceB}, {FaceR, FaceL}}
	for _, p := range pairs {
		if opposite[cb.Faces[p[0]]] != cb.Faces[p[1]] {
			t.Fatalf("cubie at %v: %v and %v are not opposite", cb.Pos, cb.Faces[p[0]], cb.Faces[p[1]])
		}
	}
}

func TestTurnOnlyTouchesItsLayer(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.Apply(SexyMove...)
		before := c.Clone()
		c.Apply(m)

		moved := 0
		for _, cb := range before.Cubies() {
			if cb.Pos[m.Axis] != m.Layer {
				after, ok := c.At(cb.Pos)
				if !ok || after.Faces != cb.Faces {
					t.Errorf("%v changed cubie at %v outside its layer", m, cb.Pos)
				}
				continue
			}
			moved++
		}
		if moved != 9 {
			t.Errorf("%v: layer has %d cubies, want 9", m, moved)
		}
	}
}

func TestAnimatedTurnMatchesApply(t *testing.T) {
	for _, m := range AllMoves {
		animated := NewCube()
		if !animated.StartTurn(m.Axis, m.Layer, m.Direction) {
			t.Fatalf("%v: StartTurn rejected on idle cube", m)
		}
		for animated.IsTurning() {
			animated.Tick()
		}

		direct := NewCube()
		direct.Apply(m)

		if !animated.Equal(direct) {
			t.Errorf("%v: animated turn differs from direct apply", m)
		}
	}
}

func TestStartTurnWhileTurning_LeavesStateUnchanged(t *testing.T) {
	c := NewCube()
	if !c.StartTurn(AxisX, 1, 1) {
		t.Fatal("first StartTurn should be accepted")
	}
	c.Tick()
	c.Tick()
	c.Tick()

	before, ok := c.Turn()
	if !ok {
		t.Fatal("cube should be turning")
	}

	for _, m := range AllMoves {
		if c.StartTurn(m.Axis, m.Layer, m.Direction) {
			t.Errorf("StartTurn(%v) accepted while turning", m)
		}
		after, _ := c.Turn()
		if after != before {
			t.Errorf("turn state changed from %+v to %+v", before, after)
		}
	}

	if err := c.Apply(R); err != ErrTurnInProgress {
		t.Errorf("Apply while turning: got %v, want ErrTurnInProgress", err)
	}
}

func TestStartTurnRejectsBadArguments(t *testing.T) {
	c := NewCube()
	bad := []struct {
		axis       Axis
		layer, dir int
	}{
		{AxisX, 0, 1},
		{AxisY, 2, 1},
		{AxisZ, 1, 0},
		{AxisZ, -1, 2},
		{Axis(3), 1, 1},
	}
	for _, b := range bad {
		if c.StartTurn(b.axis, b.layer, b.dir) {
			t.Errorf("StartTurn(%v, %d, %d) should be rejected", b.axis, b.layer, b.dir)
		}
	}
	if c.IsTurning() {
		t.Error("cube should still be idle")
	}
}

func TestTickClampsAndCommitsOnce(t *testing.T) {
	for _, step := range []float64{6, 7, 45, 89, 90, 120} {
		c := NewCube(WithTurnStep(step))
		commits := 0
		c.OnCommit(func(Move) { commits++ })

		c.StartTurn(AxisY, 1, -1)
		ticks := 0
		committedAt := 0
		for i := 0; i < 100; i++ {
			ticks++
			if c.Tick() {
				committedAt = ticks
			}
			if ts, ok := c.Turn(); ok && ts.Angle > 90 {
				t.Fatalf("step %v: angle %v exceeds 90", step, ts.Angle)
			}
		}

		want := 0
		for a := 0.0; a < 90; a += step {
			want++
		}
		if commits != 1 {
			t.Errorf("step %v: %d commits, want 1", step, commits)
		}
		if committedAt != want {
			t.Errorf("step %v: committed on tick %d, want %d", step, committedAt, want)
		}
	}
}

func TestDrawStateMarksTurningLayer(t *testing.T) {
	c := NewCube()
	c.StartTurn(AxisZ, -1, 1)
	c.Tick()

	turning := 0
	for _, d := range c.DrawState() {
		if d.Pos[AxisZ] == -1 {
			turning++
			if !d.Turning || d.Axis != AxisZ || d.Angle != c.TurnStep() {
				t.Errorf("cubie %v should turn about z by %v, got %+v", d.Pos, c.TurnStep(), d)
			}
		} else if d.Turning || d.Angle != 0 {
			t.Errorf("cubie %v should not turn", d.Pos)
		}
	}
	if turning != 9 {
		t.Errorf("%d turning cubies, want 9", turning)
	}

	// Positions are not touched until commit.
	for _, d := range c.DrawState() {
		if _, ok := NewCube().At(d.Pos); !ok {
			t.Errorf("unexpected position %v", d.Pos)
		}
	}
}

func TestCommitHooks(t *testing.T) {
	c := NewCube()
	var got []Move
	c.OnCommit(func(m Move) { got = append(got, m) })

	c.Apply(R, UPrime)
	c.StartTurn(FPrime.Axis, FPrime.Layer, FPrime.Direction)
	for c.IsTurning() {
		c.Tick()
	}

	if FormatMoves(got) != "R U' F'" {
		t.Errorf("hooks saw %q, want %q", FormatMoves(got), "R U' F'")
	}
}

func TestResetKeepsHooks(t *testing.T) {
	c := NewCube()
	commits := 0
	c.OnCommit(func(Move) { commits++ })
	c.Apply(R)
	c.StartTurn(AxisX, 1, 1)
	c.Reset()

	if !c.IsSolved() || c.IsTurning() {
		t.Error("Reset should leave a solved idle cube")
	}
	c.Apply(U)
	if commits != 2 {
		t.Errorf("commits = %d, want 2", commits)
	}
}

func TestApplyRejectsInvalidMoves(t *testing.T) {
	c := NewCube()
	err := c.Apply(R, Move{Axis: AxisX, Layer: 0, Direction: 1})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !c.IsSolved() {
		t.Error("nothing should be applied when a move is invalid")
	}
}

func randomMoves(rng *rand.Rand, n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = AllMoves[rng.Intn(len(AllMoves))]
	}
	return moves
}
