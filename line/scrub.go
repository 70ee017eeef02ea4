package line

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
)

// Scrub performs exhaustive hypothesis elimination on a line: for every
// cell that is not yet known and every color that cell could still be, it
// hypothesizes that color in a disposable copy of the line and runs Skim to
// fixpoint on the copy. If Skim reports a contradiction under the
// hypothesis, that color can never be true at that cell, so Scrub rules it
// out permanently on the real line.
//
// Scrub subsumes Skim: every cell Skim would narrow, Scrub narrows too, so
// running Scrub need never be preceded by a Skim call on the same line.
//
// Returns *ContradictionError if every color is eliminated at some cell
// (meaning the line itself admits no arrangement), or *OverlongClueError if
// clues cannot fit in the line at all.
func Scrub(clues clue.Sequence, lane View) (*Report, error) {
	affected := []int{}

	// A contradiction-free Skim pass first, so Scrub never wastes hypothesis
	// work on cells Skim could have pinned for free.
	skimReport, err := Skim(clues, lane)
	if err != nil {
		return nil, err
	}
	affected = append(affected, skimReport.Affected...)

	for idx := 0; idx < lane.Len(); idx++ {
		if lane.Get(idx).IsKnown() {
			continue
		}

		for _, candidate := range lane.Get(idx).CanBeColors() {
			hypothesis := Snapshot(lane)
			hc := hypothesis[idx]
			if _, err := hc.Learn(candidate); err != nil {
				continue // candidate already ruled out by an earlier iteration
			}
			hypothesis[idx] = hc

			_, err := Skim(clues, hypothesis)
			var contradiction *ContradictionError
			if errors.As(err, &contradiction) {
				ctx := fmt.Sprintf("scrub: %v cannot be %v at %d", clues, candidate, idx)
				if err := eliminate(clues, lane, idx, candidate, &affected, ctx); err != nil {
					return nil, err
				}
				continue
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return &Report{Affected: affected}, nil
}

// eliminate removes candidate from the set of colors cell idx could be,
// recording idx as affected if doing so narrows the cell, and converting a
// resulting empty cell into a *ContradictionError.
func eliminate(clues clue.Sequence, v View, idx int, candidate color.Color, affected *[]int, ctx string) error {
	c := v.Get(idx)
	changed, err := c.LearnNot(candidate)
	if err != nil {
		return &ContradictionError{Clues: clues, Context: ctx, Line: snapshotLine(v)}
	}
	v.Set(idx, c)
	if changed {
		*affected = append(*affected, idx)
	}
	return nil
}
