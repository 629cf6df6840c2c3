package engine

import "errors"

// Sentinel errors for the taxonomy the driver and time manager surface.
// ParseError-shaped failures are returned as plain wrapped errors from the
// board package and are not duplicated here.
var (
	// ErrUnimplemented is returned when a UCI option combination describes a
	// time-control or command shape this engine does not cover. No search
	// runs with a guessed time budget: the UCI loop logs the error and drops
	// the command. It does not end the process; the loop keeps reading.
	ErrUnimplemented = errors.New("engine: unimplemented option combination")

	// ErrNoLegalMoves signals that a completed search pass produced no move,
	// which happens when search is invoked on a position that is already
	// Checkmate or Stalemate.
	ErrNoLegalMoves = errors.New("engine: no legal moves and position not classified as terminal")

	// ErrNoMoveFound signals that the very first iterative-deepening pass
	// was cut short by the deadline, so there is no confirmed move to fall
	// back on.
	ErrNoMoveFound = errors.New("engine: no iterative-deepening pass completed before the deadline")

	// ErrDeadlineOverflow signals that computing the search deadline
	// overflowed, e.g. an absurd movetime value.
	ErrDeadlineOverflow = errors.New("engine: deadline arithmetic overflow")
)
