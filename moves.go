package gocube

// Predefined quarter turns for convenience.
//
// Example:
//
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	// Right face moves
	R      = MoveFor(FaceR, true)  // Right clockwise
	RPrime = MoveFor(FaceR, false) // Right counter-clockwise

	// Left face moves
	L      = MoveFor(FaceL, true)  // Left clockwise
	LPrime = MoveFor(FaceL, false) // Left counter-clockwise

	// Up face moves
	U      = MoveFor(FaceU, true)  // Up clockwise
	UPrime = MoveFor(FaceU, false) // Up counter-clockwise

	// Down face moves
	D      = MoveFor(FaceD, true)  // Down clockwise
	DPrime = MoveFor(FaceD, false) // Down counter-clockwise

	// Front face moves
	F      = MoveFor(FaceF, true)  // Front clockwise
	FPrime = MoveFor(FaceF, false) // Front counter-clockwise

	// Back face moves
	B      = MoveFor(FaceB, true)  // Back clockwise
	BPrime = MoveFor(FaceB, false) // Back counter-clockwise
)

// Sexy move: R U R' U' - six repetitions return to the start
var SexyMove = []Move{R, U, RPrime, UPrime}

// AllMoves lists the twelve outer-layer quarter turns.
var AllMoves = []Move{R, RPrime, L, LPrime, U, UPrime, D, DPrime, F, FPrime, B, BPrime}
