package disambiguate

import (
	"context"
	"runtime"

	"github.com/katalvlaran/nonogram/puzzle"
	"github.com/katalvlaran/nonogram/solver"
)

// yieldEvery bounds how often Analyze cooperatively yields and checks
// cancellation while iterating hypotheses, so a host pumping UI events
// on the same goroutine pool isn't starved by a long run of cheap solves.
const yieldEvery = 256

// Analyze re-solves the puzzle derived from every single-cell color
// substitution of sol and reports, per cell, the alternate color that
// leaves the fewest undetermined cells and how that count compares to
// the unperturbed baseline.
//
// ctx is checked between cells; a non-nil Cancel handle from WithCancel
// is polled at the same points. Either one tripping returns
// ErrCancelled with a nil Candidates — partial results are discarded.
func Analyze(ctx context.Context, sol puzzle.Solution, opts ...Option) (Candidates, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, cols := sol.Dimensions()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptySolution
	}

	baselinePuzzle, err := puzzle.FromSolution(sol)
	if err != nil {
		return nil, err
	}
	baselineReport, err := solver.Solve(&baselinePuzzle)
	if err != nil {
		return nil, err
	}
	baseline := baselineReport.CellsLeft

	palette := sol.Palette.Colors()
	candidates := make(Candidates, rows)
	for r := range candidates {
		candidates[r] = make([]Candidate, cols)
	}

	total := int64(rows * cols)
	var done, hypotheses int64

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cancelled(ctx, cfg.cancel) {
				return nil, ErrCancelled
			}

			current := sol.Grid[r][c]
			best := Candidate{Color: current, Ratio: ratio(baseline, baseline)}
			bestCellsLeft := -1

			for _, candidateColor := range palette {
				if candidateColor == current {
					continue
				}

				hypotheses++
				if hypotheses%yieldEvery == 0 {
					runtime.Gosched()
					if cancelled(ctx, cfg.cancel) {
						return nil, ErrCancelled
					}
				}

				trial := sol.Clone()
				trial.Grid[r][c] = candidateColor
				trialPuzzle, err := puzzle.FromSolution(trial)
				if err != nil {
					continue
				}
				report, err := solver.Solve(&trialPuzzle)
				if err != nil {
					continue // this substitution makes the puzzle unsatisfiable
				}
				if bestCellsLeft == -1 || report.CellsLeft < bestCellsLeft {
					bestCellsLeft = report.CellsLeft
					best = Candidate{Color: candidateColor, Ratio: ratio(report.CellsLeft, baseline)}
				}
			}

			candidates[r][c] = best
			done++
			if cfg.progress != nil {
				cfg.progress.Set(done, total)
			}
		}
	}

	return candidates, nil
}

// Result is what AnalyzeAsync delivers over its result channel.
type Result struct {
	Candidates Candidates
	Err        error
}

// AnalyzeAsync runs Analyze on its own goroutine and delivers the
// outcome over a buffered channel of size 1 — Go's idiomatic
// single-producer/single-consumer handoff for a single result, so the
// caller need not be ready to receive the instant Analyze finishes.
func AnalyzeAsync(ctx context.Context, sol puzzle.Solution, opts ...Option) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		candidates, err := Analyze(ctx, sol, opts...)
		out <- Result{Candidates: candidates, Err: err}
	}()
	return out
}

func cancelled(ctx context.Context, c *Cancel) bool {
	if c != nil && c.Cancelled() {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func ratio(cellsLeft, baseline int) float64 {
	if baseline == 0 {
		return float64(cellsLeft)
	}
	return float64(cellsLeft) / float64(baseline)
}
