package solver

import (
	"github.com/katalvlaran/nonogram/cell"
	"github.com/katalvlaran/nonogram/line"
)

// Grid is a two-dimensional array of Cells, indexed [row][col] and
// initialized to the full palette bitmask. It is mutated exclusively
// through the one-dimensional line.View adapters RowView and ColView, so
// the line package never needs to know which axis it is operating on.
type Grid struct {
	cells [][]cell.Cell
	rows  int
	cols  int
}

// NewGrid allocates a rows x cols grid with every cell able to be any
// color in initialMask.
func NewGrid(rows, cols int, initialMask uint32) *Grid {
	cells := make([][]cell.Cell, rows)
	for r := range cells {
		cells[r] = make([]cell.Cell, cols)
		for c := range cells[r] {
			cells[r][c] = cell.Full(initialMask)
		}
	}
	return &Grid{cells: cells, rows: rows, cols: cols}
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) cell.Cell { return g.cells[row][col] }

// rowView adapts one grid row to line.View.
type rowView struct {
	g   *Grid
	row int
}

func (v rowView) Len() int           { return v.g.cols }
func (v rowView) Get(i int) cell.Cell { return v.g.cells[v.row][i] }
func (v rowView) Set(i int, c cell.Cell) { v.g.cells[v.row][i] = c }

// colView adapts one grid column to line.View.
type colView struct {
	g   *Grid
	col int
}

func (v colView) Len() int           { return v.g.rows }
func (v colView) Get(i int) cell.Cell { return v.g.cells[i][v.col] }
func (v colView) Set(i int, c cell.Cell) { v.g.cells[i][v.col] = c }

// RowView returns a line.View over grid row r.
func (g *Grid) RowView(r int) line.View { return rowView{g: g, row: r} }

// ColView returns a line.View over grid column c.
func (g *Grid) ColView(c int) line.View { return colView{g: g, col: c} }
