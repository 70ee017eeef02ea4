package line

import (
	"fmt"

	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
)

// Report records the positions a Skim or Scrub call actually narrowed.
type Report struct {
	Affected []int
}

func learnCell(clues clue.Sequence, col color.Color, v View, idx int, affected *[]int, ctx string) error {
	c := v.Get(idx)
	changed, err := c.Learn(col)
	if err != nil {
		return &ContradictionError{Clues: clues, Context: ctx, Line: snapshotLine(v)}
	}
	v.Set(idx, c)
	if changed {
		*affected = append(*affected, idx)
	}
	return nil
}

// Skim performs cheap line inference from packed extents: it fills cells a
// clue is forced to cover by the overlap between its left-packed and
// right-packed placements, pins a clue's neighboring separators once it is
// fully determined, and marks as background any cell no clue can reach.
//
// An empty clue sequence is a special case: the entire line is background.
//
// Repeated application to an unchanged line is a no-op (idempotent).
// Returns *ContradictionError if no arrangement can satisfy clues, or
// *OverlongClueError if clues cannot fit in the line at all.
func Skim(clues clue.Sequence, lane View) (*Report, error) {
	affected := []int{}
	if len(clues) == 0 {
		for i := 0; i < lane.Len(); i++ {
			if err := learnCell(clues, color.Background, lane, i, &affected, "empty clue line"); err != nil {
				return nil, err
			}
		}
		return &Report{Affected: affected}, nil
	}

	leftPackedRightExtents, err := PackedExtents(clues, lane, false)
	if err != nil {
		return nil, err
	}
	rightPackedLeftExtents, err := PackedExtents(clues, lane, true)
	if err != nil {
		return nil, err
	}

	for i, c := range clues {
		gapBefore := i > 0 && clues[i-1].MustBeSeparatedFrom(c)
		gapAfter := i < len(clues)-1 && c.MustBeSeparatedFrom(clues[i+1])

		leftExtent := rightPackedLeftExtents[i]
		rightExtent := leftPackedRightExtents[i]

		for idx := leftExtent; idx <= rightExtent; idx++ {
			ctx := fmt.Sprintf("overlap: clue %v at %d", c, idx)
			if err := learnCell(clues, c.ColorAt(idx-leftExtent), lane, idx, &affected, ctx); err != nil {
				return nil, err
			}
		}

		if rightExtent-leftExtent+1 == c.Len() {
			if gapBefore {
				ctx := fmt.Sprintf("gap before: %v", c)
				if err := learnCell(clues, color.Background, lane, leftExtent-1, &affected, ctx); err != nil {
					return nil, err
				}
			}
			if gapAfter {
				ctx := fmt.Sprintf("gap after: %v", c)
				if err := learnCell(clues, color.Background, lane, rightExtent+1, &affected, ctx); err != nil {
					return nil, err
				}
			}
		}
	}

	// Cells strictly between the right-packed right extent of clue i-1
	// and the left-packed left extent of clue i cannot be covered by any
	// clue; they must be background.
	for i := 1; i < len(clues); i++ {
		rightPackedRightExtentPrev := rightPackedLeftExtents[i-1] + clues[i-1].Len() - 1
		leftPackedLeftExtent := leftPackedRightExtents[i] + 1 - clues[i].Len()
		if leftPackedLeftExtent == 0 {
			continue
		}
		for idx := rightPackedRightExtentPrev + 1; idx <= leftPackedLeftExtent-1; idx++ {
			ctx := fmt.Sprintf("empty between skimmed clues: idx %d, clues %v", idx, clues)
			if err := learnCell(clues, color.Background, lane, idx, &affected, ctx); err != nil {
				return nil, err
			}
		}
	}

	leftmost := leftPackedRightExtents[0] - clues[0].Len()
	rightmost := rightPackedLeftExtents[len(clues)-1] + clues[len(clues)-1].Len()

	for i := 0; i <= leftmost; i++ {
		if err := learnCell(clues, color.Background, lane, i, &affected, fmt.Sprintf("lopen: %d", i)); err != nil {
			return nil, err
		}
	}
	for i := rightmost; i < lane.Len(); i++ {
		if err := learnCell(clues, color.Background, lane, i, &affected, fmt.Sprintf("ropen: %d", i)); err != nil {
			return nil, err
		}
	}

	return &Report{Affected: affected}, nil
}
