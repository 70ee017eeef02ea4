// Package solver orchestrates the skim and scrub line operators across a
// whole grid: it allocates the grid, builds a LaneState per row and
// column, and alternates skim and scrub rounds (picking the highest
// effective-scoring eligible lane each time) until no further progress
// is possible.
//
// Complexity: O(rows * cols * palette) line invocations in the worst
// case.
package solver

import (
	"fmt"

	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
	"github.com/katalvlaran/nonogram/line"
	"github.com/katalvlaran/nonogram/puzzle"
)

// Solve runs the grid driver to a fixpoint and returns a Report
// describing the outcome. A *line.ContradictionError or
// *line.OverlongClueError from any line call is wrapped with the
// offending lane's identity and returned immediately; the driver never
// retries after a contradiction, since one indicates a malformed puzzle
// rather than a transient failure.
func Solve(p *puzzle.Puzzle, opts ...Option) (*puzzle.Report, error) {
	if p == nil {
		return nil, ErrNilPuzzle
	}
	if err := puzzle.Validate(p); err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, cols := p.Dimensions()
	grid := NewGrid(rows, cols, p.Palette.Mask())

	lanes := make([]*LaneState, 0, rows+cols)
	rowLanes := make([]*LaneState, rows)
	colLanes := make([]*LaneState, cols)
	for r := 0; r < rows; r++ {
		l := &LaneState{Clues: p.Rows[r], Row: true, Index: r}
		l.rescore(grid)
		rowLanes[r] = l
		lanes = append(lanes, l)
	}
	for c := 0; c < cols; c++ {
		l := &LaneState{Clues: p.Cols[c], Row: false, Index: c}
		l.rescore(grid)
		colLanes[c] = l
		lanes = append(lanes, l)
	}

	var cache *lineCache
	if cfg.useCache {
		cache = newLineCache()
	}

	skims, scrubs := 0, 0
	allowedSkims := cfg.initialSkimBudget

	wake := func(affected []int, sourceIsRow bool) {
		for _, idx := range affected {
			var target *LaneState
			if sourceIsRow {
				if idx < 0 || idx >= len(colLanes) {
					continue
				}
				target = colLanes[idx]
			} else {
				if idx < 0 || idx >= len(rowLanes) {
					continue
				}
				target = rowLanes[idx]
			}
			target.Skimmed = false
			target.Scrubbed = false
			target.rescore(grid)
		}
	}

	runOp := func(lane *LaneState, op string) (*line.Report, error) {
		v := lane.view(grid)
		before := lane.SkimScore
		if op == "scrub" {
			before = lane.ScrubScore
		}

		var report *line.Report
		var err error
		if cache != nil {
			if entry, ok, key := cache.lookup(lane, op, v); ok {
				replay(entry.result, v)
				report = entry.report
			} else {
				report, err = runLineOp(op, lane.Clues, v)
				if err == nil {
					cache.store(key, report, v)
				}
			}
		} else {
			report, err = runLineOp(op, lane.Clues, v)
		}
		if err != nil {
			return nil, fmt.Errorf("solver: lane %s: %w", lane.label(), err)
		}

		lane.rescore(grid)
		after := lane.SkimScore
		if op == "scrub" {
			after = lane.ScrubScore
		}
		cfg.onStep(OnStepEvent{
			Row: lane.Row, Index: lane.Index, Op: op,
			BeforeScore: before, AfterScore: after,
			Affected: len(report.Affected), AllowedSkims: allowedSkims,
		})
		return report, nil
	}

	for {
		if allowedSkims > 0 {
			if lane := pickBest(lanes, func(l *LaneState) (bool, int) {
				return !l.Skimmed, l.EffectiveSkimScore()
			}); lane != nil {
				report, err := runOp(lane, "skim")
				if err != nil {
					return nil, err
				}
				skims++
				lane.Skimmed = true
				lane.ProcessedSkimScore = lane.SkimScore
				if len(report.Affected) > 0 {
					if allowedSkims < 10 {
						allowedSkims = 10
					} else {
						allowedSkims++
					}
					wake(report.Affected, lane.Row)
				} else {
					allowedSkims--
				}
				continue
			}
		}

		// Every cell known means the puzzle is solved: no scrub can add anything.
		solved := true
		for r := 0; r < rows && solved; r++ {
			for c := 0; c < cols; c++ {
				if !grid.Get(r, c).IsKnown() {
					solved = false
					break
				}
			}
		}
		if solved {
			break
		}

		lane := pickBest(lanes, func(l *LaneState) (bool, int) {
			return !l.Scrubbed, l.EffectiveScrubScore()
		})
		if lane == nil {
			break
		}

		report, err := runOp(lane, "scrub")
		if err != nil {
			return nil, err
		}
		scrubs++
		lane.Scrubbed = true
		lane.ProcessedScrubScore = lane.ScrubScore
		if len(report.Affected) > 0 {
			allowedSkims = 10
			wake(report.Affected, lane.Row)
		}
	}

	return buildReport(p, grid, skims, scrubs), nil
}

// runLineOp dispatches to line.Skim or line.Scrub by name, used by both
// the cached and uncached code paths in Solve.
func runLineOp(op string, clues clue.Sequence, v line.View) (*line.Report, error) {
	if op == "scrub" {
		return line.Scrub(clues, v)
	}
	return line.Skim(clues, v)
}

// pickBest scans lanes for the first one where eligible(l) holds, keeping
// whichever has the strictly highest score among those. Ties go to the
// first lane encountered: since lanes is built rows-then-columns in
// index order, that means rows before columns, then ascending index.
func pickBest(lanes []*LaneState, eligible func(*LaneState) (bool, int)) *LaneState {
	var best *LaneState
	bestScore := -1
	for _, l := range lanes {
		ok, score := eligible(l)
		if !ok {
			continue
		}
		if best == nil || score > bestScore {
			best = l
			bestScore = score
		}
	}
	return best
}

// buildReport materializes the grid's current state into a puzzle.Report.
func buildReport(p *puzzle.Puzzle, grid *Grid, skims, scrubs int) *puzzle.Report {
	rows, cols := grid.Rows(), grid.Cols()
	gridColors := make([][]color.Color, rows)
	solvedMask := make([][]bool, rows)
	cellsLeft := 0

	for r := 0; r < rows; r++ {
		gridColors[r] = make([]color.Color, cols)
		solvedMask[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			cellState := grid.Get(r, c)
			if col, ok := cellState.KnownOr(); ok {
				gridColors[r][c] = col
				solvedMask[r][c] = true
			} else {
				gridColors[r][c] = color.Background
				solvedMask[r][c] = false
				cellsLeft++
			}
		}
	}

	return &puzzle.Report{
		Skims:      skims,
		Scrubs:     scrubs,
		CellsLeft:  cellsLeft,
		SolvedMask: solvedMask,
		Solution: puzzle.Solution{
			Palette: p.Palette,
			Style:   p.Style,
			Grid:    gridColors,
		},
	}
}
