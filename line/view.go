package line

import "github.com/katalvlaran/nonogram/cell"

// View is a one-dimensional window onto a line of cells — a grid row or
// column, or a disposable scratch copy. Skim, Scrub, and the heuristics
// operate exclusively through View so they never need to know whether they
// are looking at a row or a column.
type View interface {
	// Len returns the number of cells in the line.
	Len() int
	// Get returns the cell at position i (0 <= i < Len()).
	Get(i int) cell.Cell
	// Set overwrites the cell at position i.
	Set(i int, c cell.Cell)
}

// SliceView adapts a plain []cell.Cell to the View interface. It is the
// view used directly in tests and for Scrub's disposable hypothesis copies.
type SliceView []cell.Cell

// Len returns len(v).
func (v SliceView) Len() int { return len(v) }

// Get returns v[i].
func (v SliceView) Get(i int) cell.Cell { return v[i] }

// Set assigns v[i] = c.
func (v SliceView) Set(i int, c cell.Cell) { v[i] = c }

// Snapshot copies every cell of v into a fresh SliceView, suitable for
// mutating under a hypothesis without disturbing v.
func Snapshot(v View) SliceView {
	out := make(SliceView, v.Len())
	for i := range out {
		out[i] = v.Get(i)
	}
	return out
}
