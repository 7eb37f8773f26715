package gocube

import (
	"fmt"
	"strings"
)

// Move is a single quarter turn of an outer layer.
type Move struct {
	Axis      Axis // Turn axis
	Layer     int  // 1 or -1, the slice on that side of the axis
	Direction int  // 1 or -1, rotation sign about the axis
}

// Valid reports whether the move is a legal quarter turn.
func (m Move) Valid() bool {
	return m.Axis.Valid() && validLayer(m.Layer) && validDirection(m.Direction)
}

// Face returns the face whose layer the move turns.
func (m Move) Face() Face {
	return FaceOf(m.Axis, m.Layer)
}

// Clockwise reports whether the move turns its face clockwise as seen from
// outside the cube looking at that face.
func (m Move) Clockwise() bool {
	return m.Direction == -m.Layer
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if !m.Valid() {
		return "?"
	}
	if m.Clockwise() {
		return m.Face().String()
	}
	return m.Face().String() + "'"
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	inv.Direction = -m.Direction
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// MoveFor returns the quarter turn of face f, clockwise or counter-clockwise.
func MoveFor(f Face, clockwise bool) Move {
	dir := -f.Sign()
	if !clockwise {
		dir = -dir
	}
	return Move{Axis: f.Axis(), Layer: f.Sign(), Direction: dir}
}

// ParseMove parses a standard notation token into quarter turns.
// Examples: R, R', R2, U, U', U2
// A half turn such as R2 yields two quarter turns.
// Returns ErrInvalidNotation if the token is not recognised.
func ParseMove(s string) ([]Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return nil, ErrInvalidNotation
	}

	switch s[1:] {
	case "":
		return []Move{MoveFor(face, true)}, nil
	case "'", "`":
		return []Move{MoveFor(face, false)}, nil
	case "2", "2'", "2`":
		m := MoveFor(face, true)
		return []Move{m, m}, nil
	}
	return nil, ErrInvalidNotation
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		ms, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, part)
		}
		moves = append(moves, ms...)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
