package puzzle

import "errors"

// Sentinel errors for Puzzle and Solution validation.
var (
	// ErrEmptyPalette indicates a Puzzle or Solution was built with no colors.
	ErrEmptyPalette = errors.New("puzzle: palette has no colors")
	// ErrNonRectangular indicates a Solution's grid rows are not all the same length.
	ErrNonRectangular = errors.New("puzzle: solution grid rows have differing lengths")
	// ErrDimensionMismatch indicates a Puzzle has rows on one axis but none
	// on the other (e.g. 3 row-clue sequences paired with 0 column-clue
	// sequences): a grid cannot have cells on only one axis.
	ErrDimensionMismatch = errors.New("puzzle: row/column clue counts do not match grid dimensions")
)
