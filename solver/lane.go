package solver

import (
	"fmt"

	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/line"
)

// LaneState is a per-line scheduling record: which clues constrain it,
// its orientation and index, whether it has been skimmed/scrubbed since
// the last cross-axis change, and the four heuristic scores the driver
// uses to pick the next lane to process.
//
// The effective score for a pending operation is (current score minus
// the score recorded the last time this lane was processed), saturating
// at zero. This delta keeps a just-processed lane from being reselected
// until some other lane's change rescoring marks it eligible again.
type LaneState struct {
	Clues clue.Sequence
	Row   bool // true for a row lane, false for a column lane
	Index int

	Skimmed  bool
	Scrubbed bool

	SkimScore          int
	ProcessedSkimScore int
	ScrubScore         int
	ProcessedScrubScore int
}

// EffectiveSkimScore returns the delta-scheduling score for a skim pick.
func (l *LaneState) EffectiveSkimScore() int {
	return saturatingDelta(l.SkimScore, l.ProcessedSkimScore)
}

// EffectiveScrubScore returns the delta-scheduling score for a scrub pick.
func (l *LaneState) EffectiveScrubScore() int {
	return saturatingDelta(l.ScrubScore, l.ProcessedScrubScore)
}

func saturatingDelta(current, lastProcessed int) int {
	d := current - lastProcessed
	if d < 0 {
		return 0
	}
	return d
}

// view returns this lane's line.View over g.
func (l *LaneState) view(g *Grid) line.View {
	if l.Row {
		return g.RowView(l.Index)
	}
	return g.ColView(l.Index)
}

// rescore recomputes both heuristic scores from the lane's current view,
// without touching the Skimmed/Scrubbed/Processed* bookkeeping.
func (l *LaneState) rescore(g *Grid) {
	v := l.view(g)
	l.SkimScore = line.SkimScore(l.Clues, v)
	l.ScrubScore = line.ScrubScore(l.Clues, v)
}

// label renders a lane identifier for error context, e.g. "R3" or "C12".
func (l *LaneState) label() string {
	if l.Row {
		return fmt.Sprintf("R%d", l.Index)
	}
	return fmt.Sprintf("C%d", l.Index)
}
