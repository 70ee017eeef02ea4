package line_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/nonogram/cell"
	"github.com/katalvlaran/nonogram/clue"
	"github.com/katalvlaran/nonogram/color"
	"github.com/katalvlaran/nonogram/line"
)

const (
	fg  color.Color = 1
	red color.Color = 2
	bg              = color.Background
)

func freshLine(n int) line.SliceView {
	v := make(line.SliceView, n)
	for i := range v {
		v[i] = cell.Full(0b011) // bg | fg
	}
	return v
}

// freshTriLine builds an n-cell line whose cells may hold any of
// background, fg, or red.
func freshTriLine(n int) line.SliceView {
	v := make(line.SliceView, n)
	for i := range v {
		v[i] = cell.Full(0b111) // bg | fg | red
	}
	return v
}

func plainSeq(counts ...int) clue.Sequence {
	seq := make(clue.Sequence, len(counts))
	for i, n := range counts {
		seq[i] = clue.Plain{Color: fg, Count: n}
	}
	return seq
}

func colorsOf(v line.SliceView) []color.Color {
	const unknown = 255
	out := make([]color.Color, len(v))
	for i, c := range v {
		col, ok := c.KnownOr()
		if !ok {
			out[i] = unknown
			continue
		}
		out[i] = col
	}
	return out
}

type LineSuite struct {
	suite.Suite
}

func TestLineSuite(t *testing.T) {
	suite.Run(t, new(LineSuite))
}

// S1: a single block with plenty of slack leaves every cell unknown,
// whether skimmed or scrubbed.
func (s *LineSuite) TestS1_SingleBlockPlentyOfRoom() {
	require := require.New(s.T())
	seq := plainSeq(1)

	skimmed := freshLine(4)
	report, err := line.Skim(seq, skimmed)
	require.NoError(err)
	require.Empty(report.Affected)

	scrubbed := freshLine(4)
	_, err = line.Scrub(seq, scrubbed)
	require.NoError(err)
	require.Equal(colorsOf(skimmed), colorsOf(scrubbed))
	for _, c := range scrubbed {
		require.False(c.IsKnown())
	}
}

// S2: overlap inference. Two same-color clues whose total span plus
// separator equals the line length force every cell, including the
// mandatory separator.
func (s *LineSuite) TestS2_OverlapInference() {
	require := require.New(s.T())
	v := freshLine(4)
	seq := plainSeq(1, 2)

	_, err := line.Skim(seq, v)
	require.NoError(err)
	require.Equal([]color.Color{fg, bg, fg, fg}, colorsOf(v))
}

// S3: anchored inference. A single known foreground cell forces the rest
// of a 1x4 line with one clue to background.
func (s *LineSuite) TestS3_AnchoredInference() {
	require := require.New(s.T())
	v := freshLine(4)
	v[2] = cell.FromColor(fg)
	seq := plainSeq(1)

	_, err := line.Skim(seq, v)
	require.NoError(err)
	require.Equal([]color.Color{bg, bg, fg, bg}, colorsOf(v))
}

// S4: two-color non-separation. Skim alone pins the clues' forced
// overlap cells; scrub additionally excludes colors at the edges that
// would conflict with those forced cells, but cannot narrow the middle
// cell, which genuinely admits all three colors.
func (s *LineSuite) TestS4_TwoColorNonSeparation() {
	require := require.New(s.T())
	v := freshTriLine(5)
	seq := clue.Sequence{
		clue.Plain{Color: red, Count: 2},
		clue.Plain{Color: fg, Count: 2},
	}

	_, err := line.Scrub(seq, v)
	require.NoError(err)

	require.True(v[1].IsKnownToBe(red))
	require.True(v[3].IsKnownToBe(fg))
	require.ElementsMatch([]color.Color{bg, red}, v[0].CanBeColors())
	require.ElementsMatch([]color.Color{bg, red, fg}, v[2].CanBeColors())
	require.ElementsMatch([]color.Color{bg, fg}, v[4].CanBeColors())
}

// S5: a triangular front-capped clue cannot start where its cap color is
// excluded, forcing the whole clue one cell to the right and the
// remaining leading cell to background.
func (s *LineSuite) TestS5_CappedTriangle() {
	require := require.New(s.T())
	a, c := fg, red
	v := freshTriLine(3)
	v[0] = cell.FromColors(bg, c) // cell 0 excludes A

	seq := clue.Sequence{clue.Capped{FrontCap: &a, BodyColor: c, BodyLen: 1, BackCap: nil}}

	_, err := line.Skim(seq, v)
	require.NoError(err)
	require.True(v[0].IsKnownToBe(bg))
	require.True(v[1].IsKnownToBe(a))
	require.True(v[2].IsKnownToBe(c))
}

// A cell forced foreground where the only arrangement requires a
// mandatory separator is rejected with ContradictionError.
func (s *LineSuite) TestContradictionFromForcedCellConflict() {
	require := require.New(s.T())
	v := freshLine(4)
	v[1] = cell.FromColor(fg) // the forced separator between the two clues
	seq := plainSeq(1, 2)

	_, err := line.Skim(seq, v)
	require.Error(err)
	var contradiction *line.ContradictionError
	require.ErrorAs(err, &contradiction)
	require.Equal(seq, contradiction.Clues, "contradiction must carry the clue sequence for diagnosis")
}

// Scrub propagates a ContradictionError raised by its internal Skim pass
// with the clue sequence intact.
func (s *LineSuite) TestContradictionFromScrubCarriesClues() {
	require := require.New(s.T())
	v := freshLine(4)
	v[1] = cell.FromColor(fg) // the forced separator between the two clues
	seq := plainSeq(1, 2)

	_, err := line.Scrub(seq, v)
	require.Error(err)
	var contradiction *line.ContradictionError
	require.ErrorAs(err, &contradiction)
	require.Equal(seq, contradiction.Clues)
}

// A single clue that exactly fills the line is fully forced in one call.
func (s *LineSuite) TestExactFitFullyForced() {
	require := require.New(s.T())
	v := freshLine(3)
	seq := plainSeq(3)

	report, err := line.Skim(seq, v)
	require.NoError(err)
	require.Len(report.Affected, 3)
	require.Equal([]color.Color{fg, fg, fg}, colorsOf(v))
}

// An empty clue sequence forces the whole line to background.
func (s *LineSuite) TestEmptyCluesForceBackground() {
	require := require.New(s.T())
	v := freshLine(5)

	_, err := line.Skim(clue.Sequence{}, v)
	require.NoError(err)
	for _, c := range v {
		require.True(c.IsKnownToBe(bg))
	}
}

// A clue too long for the line is rejected with OverlongClueError.
func (s *LineSuite) TestOverlongRejected() {
	require := require.New(s.T())
	v := freshLine(2)
	seq := plainSeq(3)

	_, err := line.Skim(seq, v)
	require.Error(err)
	var overlong *line.OverlongClueError
	require.ErrorAs(err, &overlong)
}

// Skim is idempotent: a second call on an already-skimmed line changes nothing.
func (s *LineSuite) TestSkimIdempotent() {
	require := require.New(s.T())
	v := freshLine(6)
	seq := plainSeq(2, 1)

	_, err := line.Skim(seq, v)
	require.NoError(err)

	before := colorsOf(v)
	report, err := line.Skim(seq, v)
	require.NoError(err)
	require.Empty(report.Affected)
	require.Equal(before, colorsOf(v))
}

// Everything Skim narrows, Scrub narrows too (Scrub subsumes Skim).
func (s *LineSuite) TestScrubSubsumesSkim() {
	require := require.New(s.T())
	skimmed := freshLine(7)
	scrubbed := freshLine(7)
	seq := plainSeq(3, 2)

	_, err := line.Skim(seq, skimmed)
	require.NoError(err)
	_, err = line.Scrub(seq, scrubbed)
	require.NoError(err)

	for i := range skimmed {
		if col, ok := skimmed[i].KnownOr(); ok {
			scrubCol, scrubOk := scrubbed[i].KnownOr()
			require.True(scrubOk, "scrub must know cell %d if skim does", i)
			require.Equal(col, scrubCol, "cell %d", i)
		}
	}
}

// A fully determined arrangement is consistent with what Scrub narrows it to:
// building the unique arrangement directly and scrubbing an unknown line of
// the same clues must agree wherever Scrub reaches a verdict.
func (s *LineSuite) TestScrubAgreesWithUniqueArrangement() {
	require := require.New(s.T())
	seq := plainSeq(1, 2) // forces exactly [fg, bg, fg, fg] on a length-4 line
	lineLen := 4

	arrangement := line.NewArrangement(seq, []int{0, 1}, lineLen, clue.StylePlain)
	want := arrangement.Collect()

	v := freshLine(lineLen)
	_, err := line.Scrub(seq, v)
	require.NoError(err)

	for i, c := range v {
		col, ok := c.KnownOr()
		require.True(ok, "cell %d should be fully determined", i)
		require.Equal(want[i], col, "cell %d", i)
	}
}
