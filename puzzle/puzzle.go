// Package puzzle defines the input and output shapes the line/solver
// packages operate on: a Puzzle (palette plus row and column clue
// sequences), a Solution (a concrete color grid), and a Report (the
// solver's summary of a solve call).
//
// This package also derives a Puzzle back from a Solution
// (FromSolution), the round-trip the disambiguator needs to re-solve a
// perturbed grid.
package puzzle

import (
	"fmt"

	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
	"github.com/katalvlaran/nonogram/line"
)

// Puzzle is a palette plus the row and column clue sequences that
// constrain a grid of len(Rows) rows by len(Cols) columns.
type Puzzle struct {
	Palette color.Palette
	Style   clue.Style
	Rows    []clue.Sequence
	Cols    []clue.Sequence
}

// Solution is a fully concrete color grid: Grid[row][col], no unknowns.
// Cells a partial solve could not determine are reported as Background,
// distinguished from genuinely solved background cells by a Report's
// SolvedMask.
type Solution struct {
	Palette color.Palette
	Style   clue.Style
	Grid    [][]color.Color
}

// Report is produced by solver.Solve: call totals, the resulting
// Solution, and which positions were actually determined.
type Report struct {
	Skims, Scrubs, CellsLeft int
	Solution                 Solution
	SolvedMask               [][]bool
}

// Dimensions returns the row and column counts of the puzzle, as implied
// by its clue sequences.
func (p *Puzzle) Dimensions() (rows, cols int) {
	return len(p.Rows), len(p.Cols)
}

// Clone deep-copies a Solution's grid so the original is untouched by
// in-place hypothesis edits (used by the disambiguator).
func (s Solution) Clone() Solution {
	grid := make([][]color.Color, len(s.Grid))
	for i, row := range s.Grid {
		grid[i] = make([]color.Color, len(row))
		copy(grid[i], row)
	}
	return Solution{Palette: s.Palette, Style: s.Style, Grid: grid}
}

// Dimensions returns the row and column counts of the solution's grid.
func (s Solution) Dimensions() (rows, cols int) {
	if len(s.Grid) == 0 {
		return 0, 0
	}
	return len(s.Grid), len(s.Grid[0])
}

// Validate checks that a Puzzle is internally consistent: the palette is
// non-empty, and every row and column clue sequence can fit within the
// line length implied by the opposite axis's count.
//
// Complexity: O(rows + cols) clue-sequence scans.
func Validate(p *Puzzle) error {
	if p.Palette.Len() == 0 {
		return ErrEmptyPalette
	}

	rowCount, colCount := p.Dimensions()
	if (rowCount == 0) != (colCount == 0) {
		return fmt.Errorf("puzzle: %d rows, %d cols: %w", rowCount, colCount, ErrDimensionMismatch)
	}

	cols := len(p.Cols)
	for i, seq := range p.Rows {
		if seq.MinSpan() > cols {
			return fmt.Errorf("puzzle: row %d: %w", i, line.NewOverlongClueError(seq, cols))
		}
	}

	rows := len(p.Rows)
	for i, seq := range p.Cols {
		if seq.MinSpan() > rows {
			return fmt.Errorf("puzzle: col %d: %w", i, line.NewOverlongClueError(seq, rows))
		}
	}

	return nil
}

// FromSolution derives a Puzzle from a concrete Solution by re-deriving
// each row's and column's clue sequence from the grid's actual runs of
// color. Derived clues are always Plain (solid color runs), regardless of
// the source puzzle's original style: a capped (trianogram) clue cannot
// be recovered from a concrete grid alone, since the cap is a rendering
// choice rather than a grid-visible distinction. This is sufficient for
// the disambiguator's re-solve contract, which only needs a puzzle whose
// solution set includes the grid it was derived from.
//
// Complexity: O(rows * cols).
func FromSolution(sol Solution) (Puzzle, error) {
	rows, cols := sol.Dimensions()
	for i, row := range sol.Grid {
		if len(row) != cols {
			return Puzzle{}, fmt.Errorf("puzzle: row %d has %d cells, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}

	rowClues := make([]clue.Sequence, rows)
	for r := 0; r < rows; r++ {
		rowClues[r] = runLengthEncode(sol.Grid[r])
	}

	colClues := make([]clue.Sequence, cols)
	for c := 0; c < cols; c++ {
		column := make([]color.Color, rows)
		for r := 0; r < rows; r++ {
			column[r] = sol.Grid[r][c]
		}
		colClues[c] = runLengthEncode(column)
	}

	return Puzzle{
		Palette: sol.Palette,
		Style:   clue.StylePlain,
		Rows:    rowClues,
		Cols:    colClues,
	}, nil
}

// runLengthEncode derives a Plain clue.Sequence from a line of concrete
// colors: maximal runs of a single non-background color each become one
// clue; background cells are skipped (they are the implicit gaps between
// and around clues).
func runLengthEncode(colors []color.Color) clue.Sequence {
	seq := clue.Sequence{}
	i := 0
	for i < len(colors) {
		if colors[i] == color.Background {
			i++
			continue
		}
		c := colors[i]
		count := 0
		for i < len(colors) && colors[i] == c {
			count++
			i++
		}
		seq = append(seq, clue.Plain{Color: c, Count: count})
	}
	return seq
}
