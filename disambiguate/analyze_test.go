package disambiguate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
	"github.com/katalvlaran/nonogram/disambiguate"
	"github.com/katalvlaran/nonogram/puzzle"
)

type AnalyzeSuite struct {
	suite.Suite
	pal color.Palette
	fg  color.Color
}

func TestAnalyzeSuite(t *testing.T) {
	suite.Run(t, new(AnalyzeSuite))
}

func (s *AnalyzeSuite) SetupTest() {
	s.fg = 1
	pal, err := color.NewPalette([]color.Info{
		color.DefaultBackground(),
		color.DefaultForeground(s.fg),
	})
	s.Require().NoError(err)
	s.pal = pal
}

// checkerboardSolution is the classic ambiguous 2x2 two-color puzzle: its
// own row/col clues (each a single run of 1) admit both this diagonal
// arrangement and the opposite one, so line-level solving alone cannot
// resolve it and the baseline is non-zero.
func (s *AnalyzeSuite) checkerboardSolution() puzzle.Solution {
	bg := color.Background
	return puzzle.Solution{
		Palette: s.pal,
		Style:   clue.StylePlain,
		Grid: [][]color.Color{
			{s.fg, bg},
			{bg, s.fg},
		},
	}
}

// Substituting the ambiguous cell (0,0) with background breaks the
// checkerboard symmetry: both derived empty-clue lines (row 0, col 0)
// force their own cells to background, and the resulting known
// backgrounds let the driver resolve the one remaining cell by overlap
// wake-up, so this substitution must leave zero cells undetermined.
func (s *AnalyzeSuite) TestAnalyze_FindsFullyDeterminedAlternate() {
	require := require.New(s.T())
	sol := s.checkerboardSolution()

	candidates, err := disambiguate.Analyze(context.Background(), sol)
	require.NoError(err)
	require.Len(candidates, 2)
	require.Len(candidates[0], 2)

	best := candidates[0][0]
	require.Equal(color.Background, best.Color)
	require.Equal(0.0, best.Ratio)
}

func (s *AnalyzeSuite) TestAnalyze_EmptySolution() {
	require := require.New(s.T())
	_, err := disambiguate.Analyze(context.Background(), puzzle.Solution{Palette: s.pal})
	require.ErrorIs(err, disambiguate.ErrEmptySolution)
}

func (s *AnalyzeSuite) TestAnalyze_NilContextDefaultsToBackground() {
	require := require.New(s.T())
	sol := s.checkerboardSolution()

	_, err := disambiguate.Analyze(nil, sol) //nolint:staticcheck // deliberately exercising the nil-ctx fallback
	require.NoError(err)
}

func (s *AnalyzeSuite) TestAnalyze_ContextCancellation() {
	require := require.New(s.T())
	sol := s.checkerboardSolution()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before Analyze even starts its cell loop

	_, err := disambiguate.Analyze(ctx, sol)
	require.ErrorIs(err, disambiguate.ErrCancelled)
}

func (s *AnalyzeSuite) TestAnalyze_CancelHandle() {
	require := require.New(s.T())
	sol := s.checkerboardSolution()

	cancel := disambiguate.NewCancel()
	cancel.Cancel()

	_, err := disambiguate.Analyze(context.Background(), sol, disambiguate.WithCancel(cancel))
	require.ErrorIs(err, disambiguate.ErrCancelled)
}

func (s *AnalyzeSuite) TestAnalyze_ProgressReachesTotal() {
	require := require.New(s.T())
	sol := s.checkerboardSolution()

	progress := disambiguate.NewProgress()
	_, err := disambiguate.Analyze(context.Background(), sol, disambiguate.WithProgress(progress))
	require.NoError(err)

	done, total := progress.Get()
	require.Equal(total, done)
	require.Equal(1.0, progress.Value())
}

func (s *AnalyzeSuite) TestAnalyzeAsync_DeliversResult() {
	require := require.New(s.T())
	sol := s.checkerboardSolution()

	result := <-disambiguate.AnalyzeAsync(context.Background(), sol)
	require.NoError(result.Err)
	require.Len(result.Candidates, 2)
}
