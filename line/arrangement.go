package line

import (
	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
)

// Arrangement lazily realizes the colors of a line given a clue sequence, a
// gap vector (one gap before each clue, the trailing gap implicit), and the
// line's total length. It is itself a pull-style iterator: call Next
// repeatedly until it reports ok == false.
//
// Layout: gaps[0] cells of background, then clues[0], then gaps[1] cells of
// background, then clues[1], ..., then clues[len-1], then background padding
// out to lineLen. The trailing gap is exactly
// lineLen - (sum(gaps) + clues.TotalLen()); it is never read from gaps.
type Arrangement struct {
	clues   clue.Sequence
	gaps    []int
	lineLen int
	style   clue.Style

	block      int // even = in a gap, odd = in clues[(block-1)/2]
	posInBlock int
	overallPos int
}

// NewArrangement constructs an Arrangement over clues with the given
// explicit gap vector (len(gaps) == len(clues)) and total line length.
func NewArrangement(clues clue.Sequence, gaps []int, lineLen int, style clue.Style) *Arrangement {
	return &Arrangement{clues: clues, gaps: gaps, lineLen: lineLen, style: style}
}

// Next returns the next color of the line and true, or (Background, false)
// once the arrangement has produced lineLen colors.
func (a *Arrangement) Next() (color.Color, bool) {
	if a.overallPos >= a.lineLen {
		return color.Background, false
	}

	var blockClue clue.Clue
	if a.block%2 == 0 {
		gapIdx := a.block / 2
		if gapIdx == len(a.gaps) {
			// The trailing gap isn't represented in a.gaps; it simply
			// fills the rest of the line with background.
			a.posInBlock++
			a.overallPos++
			return color.Background, true
		}
		blockClue = clue.NewSolid(a.style, color.Background, a.gaps[gapIdx])
	} else {
		blockClue = a.clues[(a.block-1)/2]
	}

	if a.posInBlock >= blockClue.Len() {
		a.block++
		a.posInBlock = 0
		return a.Next()
	}
	c := blockClue.ColorAt(a.posInBlock)
	a.posInBlock++
	a.overallPos++
	return c, true
}

// Collect materializes the whole arrangement as a slice of length lineLen.
func (a *Arrangement) Collect() []color.Color {
	out := make([]color.Color, 0, a.lineLen)
	for {
		c, ok := a.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}
