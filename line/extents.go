package line

import (
	"fmt"

	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
)

// PackedExtents computes, for each clue in clues, the end-index of its
// left-packed placement (reversed == false) or, read through a reversed
// view, its right-packed placement translated back to forward indices
// (reversed == true).
//
// Left-packing greedily places each clue as far left as the line state
// allows: every position it would cover must still permit the clue's
// ColorAt for that offset, and a one-cell separator is inserted where
// MustBeSeparatedFrom requires one. If a conflict is found inside the
// placement window, the window is scanned right-to-left so a deep conflict
// lets the clue jump farther in one step instead of sliding one cell at a
// time.
//
// A second pass then "reels in" extents using known foreground cells near
// the line's far end: walking inward from the last cell, any foreground
// cell not yet covered by a packed placement forces the nearest unplaced
// clue to extend to cover it.
//
// Returns *OverlongClueError if the clues' minimum span exceeds lane's
// length, or *ContradictionError if the span fits but the current cell
// state leaves no placement for some clue.
func PackedExtents(clues clue.Sequence, lane View, reversed bool) ([]int, error) {
	n := lane.Len()

	at := func(idx int) int {
		if reversed {
			return n - 1 - idx
		}
		return idx
	}
	clueAt := func(idx int) clue.Clue {
		if reversed {
			return clues[len(clues)-1-idx]
		}
		return clues[idx]
	}

	extents := make([]int, 0, len(clues))
	pos := 0
	haveLast := false
	var lastClue clue.Clue

	for clueIdx := 0; clueIdx < len(clues); clueIdx++ {
		c := clueAt(clueIdx)
		// MustBeSeparatedFrom takes the earlier clue (in forward order) as
		// its receiver; in the reversed pass that is c, not lastClue.
		needsGap := haveLast && lastClue.MustBeSeparatedFrom(c)
		if reversed {
			needsGap = haveLast && c.MustBeSeparatedFrom(lastClue)
		}
		if needsGap {
			pos++
		}

		placeable := false
		for !placeable {
			placeable = true
			for possiblePos := pos + c.Len() - 1; possiblePos >= pos; possiblePos-- {
				if possiblePos >= n {
					if clues.MinSpan() > n {
						return nil, &OverlongClueError{Clues: clues, LineLen: n, Required: clues.MinSpan()}
					}
					ctx := fmt.Sprintf("pack: no placement left for clue %v", c)
					return nil, &ContradictionError{Clues: clues, Context: ctx, Line: snapshotLine(lane)}
				}
				cur := lane.Get(at(possiblePos))
				offset := possiblePos - pos
				if reversed {
					offset = c.Len() - 1 - offset
				}
				if !cur.CanBe(c.ColorAt(offset)) {
					pos = possiblePos + 1
					placeable = false
					break
				}
			}
		}
		extents = append(extents, pos+c.Len()-1)
		pos += c.Len()
		lastClue = c
		haveLast = true
	}

	// Reel in extents using orphaned foreground cells near the far end.
	curExtentIdx := len(extents) - 1
	i := n - 1
	for {
		if !lane.Get(at(i)).CanBe(color.Background) {
			if extents[curExtentIdx] < i {
				extents[curExtentIdx] = i
			}
			i = extents[curExtentIdx] + 1 - clueAt(curExtentIdx).Len()
			if curExtentIdx == 0 {
				break
			}
			curExtentIdx--
		}
		if i == 0 {
			break
		}
		i--
	}

	if reversed {
		for l, r := 0, len(extents)-1; l < r; l, r = l+1, r-1 {
			extents[l], extents[r] = extents[r], extents[l]
		}
		for idx, e := range extents {
			extents[idx] = n - e - 1
		}
	}

	return extents, nil
}

// NewOverlongClueError reports that clues cannot fit in a line of lineLen
// cells, without requiring a View (used by puzzle validation, which checks
// spans before any Grid exists).
func NewOverlongClueError(clues clue.Sequence, lineLen int) error {
	return &OverlongClueError{Clues: clues, LineLen: lineLen, Required: clues.MinSpan()}
}
