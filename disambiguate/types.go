// Package disambiguate ranks single-cell edits to an already-solved
// puzzle by how much each one would reduce the puzzle's remaining
// ambiguity, by re-solving the puzzle derived from every one-cell
// perturbation and keeping whichever alternate color leaves the fewest
// undetermined cells.
//
// Complexity: O(rows * cols * palette) full solves, each itself
// O(rows * cols * palette) line invocations — quartic overall, which is
// why Analyze exposes cancellation and progress for a long-running call.
package disambiguate

import (
	"sync/atomic"

	"github.com/katalvlaran/nonogram/color"
)

// Candidate names the single best alternate color for one cell and how
// much ambiguity remains after substituting it: Ratio is the resolved
// puzzle's cells-left divided by the baseline (unperturbed) cells-left,
// so 0 means the substitution still leaves a fully-determined puzzle and
// larger values mean progressively more ambiguity was introduced.
type Candidate struct {
	Color color.Color
	Ratio float64
}

// Candidates holds one Candidate per grid cell, matching a Solution's
// dimensions: Candidates[row][col].
type Candidates [][]Candidate

// Cancel is a cooperative cancellation flag: a host goroutine calls
// Cancel to request early return, and Analyze polls Cancelled between
// cells. It carries no synchronization guarantees beyond the flag
// itself — a hint, not a barrier, per the relaxed-ordering semantics
// this module is built to.
type Cancel struct {
	flag atomic.Bool
}

// NewCancel returns a fresh, unset Cancel handle.
func NewCancel() *Cancel { return &Cancel{} }

// Cancel requests that an in-flight Analyze call stop at its next
// cell boundary.
func (c *Cancel) Cancel() { c.flag.Store(true) }

// Cancelled reports whether Cancel has been called.
func (c *Cancel) Cancelled() bool { return c.flag.Load() }

// Progress is a numerator/denominator pair a host can poll for a
// monotonic completion fraction, updated by Analyze between cells. A
// numerator/denominator pair of atomic.Int64 is used in place of a
// single bit-cast float so a reader never has to reconstruct a float
// from a raw bit pattern to get a sensible partial value.
type Progress struct {
	done  atomic.Int64
	total atomic.Int64
}

// NewProgress returns a fresh Progress reading 0/0.
func NewProgress() *Progress { return &Progress{} }

// Set records how many of total units of work are done.
func (p *Progress) Set(done, total int64) {
	p.done.Store(done)
	p.total.Store(total)
}

// Get returns the raw (done, total) pair.
func (p *Progress) Get() (done, total int64) {
	return p.done.Load(), p.total.Load()
}

// Value returns done/total as a fraction in [0,1], or 0 if total is
// still 0 (no work has been sized yet).
func (p *Progress) Value() float64 {
	done, total := p.Get()
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}
