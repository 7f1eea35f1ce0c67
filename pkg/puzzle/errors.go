package puzzle

import "errors"

// ErrInconsistentPuzzle is returned when the correct action cannot be offered to the user
var ErrInconsistentPuzzle = errors.New("inconsistent puzzle")

// ErrInvalidOptions is returned by New when the assembler options cannot deal a puzzle
var ErrInvalidOptions = errors.New("invalid puzzle options")
