// Package cell implements the grid cell primitive: a bitmask over the color
// universe recording which colors a cell could still hold.
//
// A Cell is a set-of-colors over a bounded universe, represented as a 32-bit
// mask (one bit per color.Color). This is the single most important
// performance decision in the solver: no hashing, no heap allocation per
// cell, and every mutator is a handful of bitwise operations.
//
// Invariants: a Cell's mask is never empty while a solve is progressing
// (Learn/LearnNot/LearnIntersect fail rather than produce an empty mask); a
// Cell is known iff its mask has exactly one bit set.
package cell

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/nonogram/color"
)

// ErrContradiction is returned by a mutator that would empty a Cell's mask,
// or that targets a color the mask already excludes.
var ErrContradiction = errors.New("cell: learned a contradiction")

// Cell is a bitmask of still-possible colors.
type Cell struct {
	mask uint32
}

// Full returns a Cell that can still be any color in mask (typically
// color.Palette.Mask()). This is the initial state of every grid cell.
func Full(mask uint32) Cell { return Cell{mask: mask} }

// Impossible returns a Cell that can be no color at all. It never occurs in
// a live grid; it is a scratch starting point for building up a
// possibilities mask via ActuallyCouldBe (used by FromColors and by tests
// constructing partial-knowledge fixtures).
func Impossible() Cell { return Cell{mask: 0} }

// FromColor returns a Cell known to be exactly c.
func FromColor(c color.Color) Cell { return Cell{mask: 1 << uint(c)} }

// FromColors returns a Cell that could be any of colors.
func FromColors(colors ...color.Color) Cell {
	c := Impossible()
	for _, col := range colors {
		c.ActuallyCouldBe(col)
	}
	return c
}

// Raw returns the underlying bitmask, for cache keys and diagnostics.
func (c Cell) Raw() uint32 { return c.mask }

// CanBe reports whether col is still a possible color for this cell.
func (c Cell) CanBe(col color.Color) bool {
	return c.mask&(1<<uint(col)) != 0
}

// IsKnown reports whether exactly one color remains possible.
func (c Cell) IsKnown() bool {
	return c.mask != 0 && c.mask&(c.mask-1) == 0
}

// IsKnownToBe reports whether this cell's single remaining possibility is col.
func (c Cell) IsKnownToBe(col color.Color) bool {
	return c.mask == 1<<uint(col)
}

// Contradictory reports whether no color remains possible.
func (c Cell) Contradictory() bool { return c.mask == 0 }

// KnownOr returns the single remaining color and true, or (0, false) if the
// cell is not yet known.
func (c Cell) KnownOr() (color.Color, bool) {
	if !c.IsKnown() {
		return 0, false
	}
	return color.Color(bits.TrailingZeros32(c.mask)), true
}

// CanBeColors returns every color still possible for this cell, in
// ascending order. It allocates; prefer CanBe in hot loops.
func (c Cell) CanBeColors() []color.Color {
	res := make([]color.Color, 0, bits.OnesCount32(c.mask))
	m := c.mask
	for m != 0 {
		i := bits.TrailingZeros32(m)
		res = append(res, color.Color(i))
		m &= m - 1
	}
	return res
}

// Learn narrows the cell to exactly col. Reports whether the mask actually
// changed (false if the cell was already known to be col). Returns
// ErrContradiction, leaving the cell unchanged, if col is not currently
// possible.
func (c *Cell) Learn(col color.Color) (bool, error) {
	if !c.CanBe(col) {
		return false, ErrContradiction
	}
	changed := !c.IsKnownToBe(col)
	c.mask = 1 << uint(col)
	return changed, nil
}

// LearnNot removes col from the set of possible colors. Reports whether the
// mask actually changed. Returns ErrContradiction, leaving the cell
// unchanged, if col was the cell's only remaining possibility.
func (c *Cell) LearnNot(col color.Color) (bool, error) {
	if c.IsKnownToBe(col) {
		return false, ErrContradiction
	}
	changed := c.CanBe(col)
	c.mask &^= 1 << uint(col)
	return changed, nil
}

// LearnIntersect narrows the cell to the intersection with other's mask.
// Reports whether anything was removed. Returns ErrContradiction, leaving
// the cell unchanged, if the intersection would be empty.
func (c *Cell) LearnIntersect(other Cell) (bool, error) {
	intersected := c.mask & other.mask
	if intersected == 0 {
		return false, ErrContradiction
	}
	changed := intersected != c.mask
	c.mask = intersected
	return changed, nil
}

// ActuallyCouldBe adds col to the set of possible colors (a bitwise OR).
// Used to build up a possibilities mask from scratch (starting from
// Impossible), not to narrow a live grid cell.
func (c *Cell) ActuallyCouldBe(col color.Color) {
	c.mask |= 1 << uint(col)
}
