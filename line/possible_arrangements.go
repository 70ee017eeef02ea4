package line

import "github.com/katalvlaran/nonogram/clue"

// PossibleArrangements lazily produces every gap vector of a fixed length
// whose entries sum to at most maxSum, in lexicographic odometer order:
// increment position 0 while the sum stays under maxSum; otherwise carry by
// zeroing the filled low positions and incrementing the next one.
//
// It is finite (bounded by maxSum and length) and restartable only by
// constructing a new PossibleArrangements; it does not support Reset.
type PossibleArrangements struct {
	gaps      []int
	maxSum    int
	firstStep bool
	done      bool
}

// NewPossibleArrangements builds the enumerator for a gap vector of the
// given length, with entries summing to at most maxSum.
func NewPossibleArrangements(length, maxSum int) *PossibleArrangements {
	return &PossibleArrangements{gaps: make([]int, length), maxSum: maxSum, firstStep: true}
}

// Next returns the next gap vector and true, or (nil, false) once every
// vector has been produced. The returned slice is owned by the caller;
// PossibleArrangements reuses no backing array across calls.
func (p *PossibleArrangements) Next() ([]int, bool) {
	if p.done {
		return nil, false
	}
	if p.firstStep {
		p.firstStep = false
		return p.snapshot(), true
	}

	sum := 0
	for _, g := range p.gaps {
		sum += g
	}
	if sum < p.maxSum {
		p.gaps[0]++
		return p.snapshot(), true
	}

	for i := 0; i < len(p.gaps); i++ {
		if i == len(p.gaps)-1 {
			p.done = true
			return nil, false
		}
		if p.gaps[i] == 0 {
			continue
		}
		p.gaps[i] = 0
		p.gaps[i+1]++
		return p.snapshot(), true
	}

	p.done = true
	return nil, false
}

func (p *PossibleArrangements) snapshot() []int {
	out := make([]int, len(p.gaps))
	copy(out, p.gaps)
	return out
}

// SatisfiesSeparation reports whether gaps respects the mandatory
// single-cell separators between consecutive clues in the sequence
// (gaps[i] >= 1 whenever clues[i-1].MustBeSeparatedFrom(clues[i])).
func SatisfiesSeparation(clues clue.Sequence, gaps []int) bool {
	for i := 1; i < len(clues); i++ {
		if clues[i-1].MustBeSeparatedFrom(clues[i]) && gaps[i] < 1 {
			return false
		}
	}
	return true
}
