package disambiguate

import "errors"

// Sentinel errors for Analyze/AnalyzeAsync.
var (
	// ErrCancelled is returned when a Cancel handle or context is tripped
	// before the analysis completes. Partial results are discarded.
	ErrCancelled = errors.New("disambiguate: analysis cancelled")

	// ErrEmptySolution is returned when the supplied Solution has no
	// rows or columns.
	ErrEmptySolution = errors.New("disambiguate: solution has no cells")
)
