package solver

// OnStepEvent is a structured trace of one skim or scrub invocation,
// delivered to an OnStep hook if one is configured. It carries enough
// detail to render a progress display externally, without this package
// performing any rendering itself.
type OnStepEvent struct {
	Row          bool
	Index        int
	Op           string // "skim" or "scrub"
	BeforeScore  int
	AfterScore   int
	Affected     int
	AllowedSkims int
}

// Option configures a Solve call via functional arguments, in the style
// used throughout this module's sibling packages.
type Option func(*config)

type config struct {
	initialSkimBudget int
	useCache          bool
	onStep            func(OnStepEvent)
}

// DefaultOptions returns the zero-config behavior: a skim budget of 10
// consecutive unproductive calls, no line cache, no step hook.
func DefaultOptions() config {
	return config{
		initialSkimBudget: 10,
		useCache:          false,
		onStep:            func(OnStepEvent) {},
	}
}

// WithInitialSkimBudget overrides the starting number of consecutive
// unproductive skim calls the driver tolerates before switching to scrub.
// Non-positive values are ignored.
func WithInitialSkimBudget(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.initialSkimBudget = n
		}
	}
}

// WithLineCache enables call-scoped memoization of skim/scrub results,
// keyed by lane identity and a snapshot of the line's cell masks.
func WithLineCache() Option {
	return func(c *config) { c.useCache = true }
}

// WithOnStep installs a trace hook invoked after every skim or scrub call.
func WithOnStep(fn func(OnStepEvent)) Option {
	return func(c *config) {
		if fn != nil {
			c.onStep = fn
		}
	}
}
