package line

import (
	"fmt"

	"github.com/katalvlaran/nonogram/cell"
	"github.com/katalvlaran/nonogram/clue"
)

// ContradictionError reports that a line cannot be satisfied by any
// arrangement given its current cell state. It is raised by packing (no
// placement left for a clue), Skim (a Learn that would empty a cell) or
// Scrub (no hypothesis survived for some cell),
// and carries enough context — the clue sequence and a snapshot of the line
// at the time of failure — for the caller to diagnose a malformed puzzle.
type ContradictionError struct {
	Clues clue.Sequence
	Line  []cell.Cell
	// Context is a short human-readable note on which step failed
	// (e.g. "overlap: clue {1 2} at 3").
	Context string
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("line: contradiction (%s): clues=%v line=%v", e.Context, e.Clues, e.Line)
}

// OverlongClueError reports that a clue sequence's minimum span (clue
// lengths plus required separators) exceeds the line's length. Detected
// while packing extents.
type OverlongClueError struct {
	Clues    clue.Sequence
	LineLen  int
	Required int
}

func (e *OverlongClueError) Error() string {
	return fmt.Sprintf("line: clues %v need %d cells but the line has only %d", e.Clues, e.Required, e.LineLen)
}

// snapshotLine materializes a View into a plain slice for error reporting.
func snapshotLine(v View) []cell.Cell {
	out := make([]cell.Cell, v.Len())
	for i := range out {
		out[i] = v.Get(i)
	}
	return out
}
