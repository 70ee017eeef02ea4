package solver

import "errors"

// ErrNilPuzzle is returned by Solve when given a nil *puzzle.Puzzle.
var ErrNilPuzzle = errors.New("solver: puzzle is nil")
