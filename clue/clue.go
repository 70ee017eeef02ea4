// Package clue defines the two clue variants a nonogram line can be
// constrained by — plain color-run blocks, and triangular-capped
// ("trianogram") blocks — behind one shared Clue interface, plus the
// Sequence (a row's or column's ordered clue list).
//
// Plain and Capped do not share storage; they share a capability set
// (Len, ColorAt, MustBeSeparatedFrom, NewSolid) so line-solving code never
// needs to know which variant it is holding.
package clue

import "github.com/katalvlaran/nonogram/color"

// Style identifies which Clue variant a Puzzle uses throughout.
type Style int

const (
	// StylePlain puzzles use Plain clues: solid runs of one color.
	StylePlain Style = iota
	// StyleCapped puzzles use Capped clues: a body run with optional
	// triangular front/back caps ("trianograms").
	StyleCapped
)

// Clue is the shared capability set of both clue variants.
type Clue interface {
	// Len returns the clue's total on-line length, caps included.
	Len() int
	// ColorAt returns the color this clue occupies at offset (0 <= offset < Len()).
	ColorAt(offset int) color.Color
	// MustBeSeparatedFrom reports whether a background cell is mandatory
	// between this clue and the next one in the same Sequence.
	MustBeSeparatedFrom(next Clue) bool
}

// NewSolid builds a single-color, cap-free clue of the given style. It is
// used both for ordinary monochrome puzzles and, internally to the line
// package, to represent a gap's run of background as a pseudo-clue so the
// arrangement enumerator can treat gaps and real clues uniformly.
func NewSolid(style Style, c color.Color, count int) Clue {
	switch style {
	case StyleCapped:
		return Capped{BodyColor: c, BodyLen: count}
	default:
		return Plain{Color: c, Count: count}
	}
}

// Plain is a solid run of Count cells, all of Color.
type Plain struct {
	Color color.Color
	Count int
}

// Len returns Count.
func (p Plain) Len() int { return p.Count }

// ColorAt returns Color regardless of offset; every cell of a Plain clue is
// the same color.
func (p Plain) ColorAt(int) color.Color { return p.Color }

// MustBeSeparatedFrom requires a background cell between two Plain clues
// iff they share a color (otherwise the boundary between runs is already
// unambiguous).
func (p Plain) MustBeSeparatedFrom(next Clue) bool {
	n, ok := next.(Plain)
	if !ok {
		return false
	}
	return p.Color == n.Color
}

// Capped is a body run of BodyLen cells in BodyColor, with optional
// triangular front/back caps (one cell each) that visually touch the
// adjacent run without needing a body-colored cell of their own.
//
// Total length is BodyLen, plus one for each non-nil cap.
type Capped struct {
	FrontCap  *color.Color
	BodyColor color.Color
	BodyLen   int
	BackCap   *color.Color
}

// Len returns the body length plus one per present cap.
func (c Capped) Len() int {
	n := c.BodyLen
	if c.FrontCap != nil {
		n++
	}
	if c.BackCap != nil {
		n++
	}
	return n
}

// ColorAt returns the front cap's color at offset 0 (if present), the back
// cap's color at the last offset (if present), and BodyColor everywhere else.
func (c Capped) ColorAt(offset int) color.Color {
	if offset == 0 && c.FrontCap != nil {
		return *c.FrontCap
	}
	if offset == c.Len()-1 && c.BackCap != nil {
		return *c.BackCap
	}
	return c.BodyColor
}

// MustBeSeparatedFrom requires a background cell between two Capped clues
// of the same body color, UNLESS a cap on either side of the interface
// absorbs it: this clue's BackCap or next's FrontCap being present means
// the two triangular halves meet at the shared edge with no blank needed.
func (c Capped) MustBeSeparatedFrom(next Clue) bool {
	n, ok := next.(Capped)
	if !ok {
		return false
	}
	return c.BodyColor == n.BodyColor && c.BackCap == nil && n.FrontCap == nil
}

// Sequence is the ordered clue list for one row or column.
type Sequence []Clue

// TotalLen returns the sum of every clue's Len().
func (s Sequence) TotalLen() int {
	total := 0
	for _, c := range s {
		total += c.Len()
	}
	return total
}

// RequiredSeparators returns how many mandatory single-cell gaps the
// sequence needs between consecutive clues.
func (s Sequence) RequiredSeparators() int {
	n := 0
	for i := 1; i < len(s); i++ {
		if s[i-1].MustBeSeparatedFrom(s[i]) {
			n++
		}
	}
	return n
}

// MinSpan returns the minimum line length that can hold the sequence:
// TotalLen() plus RequiredSeparators(). A line shorter than this cannot
// satisfy the sequence under any arrangement.
func (s Sequence) MinSpan() int {
	return s.TotalLen() + s.RequiredSeparators()
}
