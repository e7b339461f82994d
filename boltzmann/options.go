// Package boltzmann - run configuration.
//
// Options gathers every knob of a run in one struct; DefaultOptions is the
// single source of truth for zero-config behavior, and the Default*
// constants below MUST stay in sync with it. Validation lives in
// validate.go and happens once, inside Solve, before any state is built.
package boltzmann

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStartTemp is the initial temperature: high enough that early
	// acceptance probabilities sit near 0.5 regardless of consensus sign
	// (exploration phase).
	DefaultStartTemp = 1e4

	// DefaultMinTemp is the floor temperature ending an attempt: low enough
	// that updates follow the consensus sign almost deterministically.
	DefaultMinTemp = 1.0

	// DefaultDecayRate is the geometric cooling factor applied after every
	// sweep. Must stay inside (0,1) for the schedule to terminate.
	DefaultDecayRate = 0.99

	// DefaultMaxAttempts bounds the reset-and-retry loop. The retry loop
	// recovers from non-convergent attempts; a finite default guarantees
	// termination on pathological penalty/bonus/temperature combinations.
	DefaultMaxAttempts = 10

	// defaultRNGSeed is the fixed “zero” seed used when callers pass
	// Seed==0. The value is arbitrary but stable to keep reproducible
	// defaults.
	defaultRNGSeed int64 = 1
)

// Options configures a Solve run.
//
// Fields:
//   - Penalty      — weight magnitude discouraging two cities in one tour
//     position or one city in two positions. Must be > 0 and > the maximum
//     pairwise distance.
//   - Bonus        — per-neuron activation bias preventing the trivial
//     all-inactive equilibrium. Must be > 0 and < Penalty; on the order of
//     the maximum distance works well.
//   - StartTemp    — initial temperature of every attempt (> 0).
//   - MinTemp      — floor temperature ending an attempt (0 < MinTemp < StartTemp).
//   - DecayRate    — geometric cooling factor in (0,1) exclusive.
//   - MaxAttempts  — cap on full cooling runs. 0 ⇒ DefaultMaxAttempts;
//     negative ⇒ unlimited (retry until a valid tour decodes — explicit
//     opt-in, as this may never terminate).
//   - Seed         — RNG seed; 0 ⇒ a fixed default stream. The seed fully
//     determines the trajectory: same instance + same Options ⇒ same tour.
//   - ShuffleSweep — when true, each sweep visits neurons in a freshly
//     shuffled order drawn from the same RNG; when false (default) the
//     visit order is fixed row-major. Either satisfies the update contract;
//     the choice only changes which trajectory the seed selects.
//   - Observer     — optional read-only snapshot sink invoked after every
//     sweep. Nil disables observation. Observation never consumes RNG
//     draws, so attaching an observer cannot change the decoded tour.
type Options struct {
	Penalty      float64
	Bonus        float64
	StartTemp    float64
	MinTemp      float64
	DecayRate    float64
	MaxAttempts  int
	Seed         int64
	ShuffleSweep bool
	Observer     Observer
}

// DefaultOptions returns the canonical baseline configuration. Penalty and
// Bonus carry no usable defaults: they depend on the distance scale, so the
// zero values force the caller to choose them (validated in Solve).
func DefaultOptions() Options {
	return Options{
		StartTemp:   DefaultStartTemp,
		MinTemp:     DefaultMinTemp,
		DecayRate:   DefaultDecayRate,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// maxAttempts resolves the cap policy: 0 ⇒ default, negative ⇒ unlimited.
func (o Options) maxAttempts() int {
	if o.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}

	return o.MaxAttempts
}
