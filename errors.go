package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("gocube: invalid move notation")

	// State errors
	ErrTurnInProgress = errors.New("gocube: turn in progress")
	ErrInvalidMove    = errors.New("gocube: invalid move")
)
