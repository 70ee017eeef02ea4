package disambiguate

// Option configures an Analyze/AnalyzeAsync call via functional
// arguments, in the same style as solver.Option.
type Option func(*config)

type config struct {
	cancel   *Cancel
	progress *Progress
}

// DefaultOptions returns a config with no cancellation handle and no
// progress reporting wired in: Analyze still honors ctx even with no
// options at all.
func DefaultOptions() config {
	return config{}
}

// WithCancel wires a Cancel handle a host can flip from another
// goroutine to request early termination at the next cell boundary.
func WithCancel(c *Cancel) Option {
	return func(cfg *config) {
		cfg.cancel = c
	}
}

// WithProgress wires a Progress handle a host can poll for a
// completion fraction while Analyze runs.
func WithProgress(p *Progress) Option {
	return func(cfg *config) {
		cfg.progress = p
	}
}
