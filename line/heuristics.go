package line

import (
	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
)

// SkimScore estimates how much new information a Skim call would yield.
// It is the total clue length plus the longest clue, minus the longest run
// of not-yet-background cells, so lines whose clues nearly fill their open
// space score higher; a small bonus is added when either endpoint is not
// yet known background (endpoints propagate easily). A clue-free line scores high
// enough to always be picked first, since it is solved in one call.
func SkimScore(clues clue.Sequence, lane View) int {
	if len(clues) == 0 {
		return 1000
	}

	longestForegroundableSpan := 0
	curForegroundableSpan := 0
	for i := 0; i < lane.Len(); i++ {
		if !lane.Get(i).IsKnownToBe(color.Background) {
			curForegroundableSpan++
			if curForegroundableSpan > longestForegroundableSpan {
				longestForegroundableSpan = curForegroundableSpan
			}
		} else {
			curForegroundableSpan = 0
		}
	}

	totalClueLength := 0
	longestClue := 0
	for _, c := range clues {
		totalClueLength += c.Len()
		if c.Len() > longestClue {
			longestClue = c.Len()
		}
	}

	edgeBonus := 0
	if !lane.Get(0).IsKnownToBe(color.Background) {
		edgeBonus += 2
	}
	if !lane.Get(lane.Len() - 1).IsKnownToBe(color.Background) {
		edgeBonus += 2
	}

	return totalClueLength + longestClue - longestForegroundableSpan + edgeBonus
}

// ScrubScore estimates how much new information a Scrub call would yield.
// It rewards density (space the clues need minus known foreground already
// placed, plus the longest clue, minus the number of clues) and adds a term proportional to unknown
// background cells weighted by "excess chunks" — the number of current
// foreground runs minus the number of clues. Near-saturated lines and
// lines with more runs than clues score highest.
func ScrubScore(clues clue.Sequence, lane View) int {
	foregroundCells := 0
	spaceTaken := 0
	longestClue := 0
	for i, c := range clues {
		foregroundCells += c.Len()
		spaceTaken += c.Len()
		if i > 0 && clues[i-1].MustBeSeparatedFrom(c) {
			spaceTaken++
		}
		if c.Len() > longestClue {
			longestClue = c.Len()
		}
	}

	knownBackgroundCells := 0
	unknownCells := 0
	for i := 0; i < lane.Len(); i++ {
		c := lane.Get(i)
		if c.IsKnownToBe(color.Background) {
			knownBackgroundCells++
		}
		if !c.IsKnown() {
			unknownCells++
		}
	}
	knownForegroundCells := lane.Len() - unknownCells - knownBackgroundCells

	density := spaceTaken - knownForegroundCells + longestClue - len(clues)

	knownForegroundChunks := 0
	inChunk := false
	for i := 0; i < lane.Len(); i++ {
		if !lane.Get(i).CanBe(color.Background) {
			if !inChunk {
				knownForegroundChunks++
			}
			inChunk = true
		} else {
			inChunk = false
		}
	}

	unknownBackgroundCells := (lane.Len() - foregroundCells) - knownBackgroundCells

	excessChunks := -2
	if knownForegroundCells > 0 {
		excessChunks = knownForegroundChunks - len(clues)
	}

	bonus := unknownBackgroundCells * (excessChunks + 2) / 2
	if bonus < 0 {
		bonus = 0
	}

	return density + bonus
}
