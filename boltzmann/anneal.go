// Package boltzmann - annealing controller and the Solve entry point.
//
// This file owns the temperature schedule and the attempt state machine:
//
//	Initialized → Sweeping → (Equilibrated | Exhausted)
//
// Per attempt the controller cools geometrically from StartTemp toward
// MinTemp, running one full sweep per temperature step. The schedule is
// deterministic in length - the stochastic update has no convergence
// signal of its own - so an attempt always runs SweepsPerAttempt sweeps,
// then the grid is decoded. A valid decode ends the run; an invalid one
// resets the network and retries from StartTemp until the attempt cap.
//
// Design principles:
//   - Deterministic: one seeded RNG, no time-based randomness.
//   - Strict sentinels: only errors from types.go.
//   - Observation is pure: snapshots are emitted between sweeps and never
//     consume RNG draws, so attaching an observer cannot change the tour.
package boltzmann

import (
	"math"

	"github.com/katalvlaran/boltztsp/distmat"
)

// Solve approximates a shortest tour over dist with a Boltzmann-machine
// network. It validates opts, builds the static weight tensor once, then
// runs cooling attempts until a valid tour decodes or the attempt cap is
// reached.
//
// Contracts:
//   - dist non-nil; scalar constraints per Options docs.
//   - Same dist + same Options ⇒ same Result (seed-determined).
//
// Errors: ErrNilDistances, ErrBadPenalty, ErrBadBonus, ErrBadSchedule on
// invalid input; ErrAttemptsExhausted when the cap is consumed (the
// returned Result still carries the attempt count).
//
// Complexity: O(n⁴) per sweep, SweepsPerAttempt sweeps per attempt.
func Solve(dist *distmat.Matrix, opts Options) (Result, error) {
	// Stage 1: fail fast on malformed input; nothing is built until the
	// whole configuration is known to be sound.
	if err := validateAll(dist, opts); err != nil {
		return Result{}, err
	}

	// Stage 2: static state shared by every attempt. The weight tensor is
	// computed once per run; the RNG is the run's single entropy source.
	weights, err := BuildWeights(dist, opts.Penalty, opts.Bonus)
	if err != nil {
		return Result{}, err
	}
	var (
		rng      = rngFromSeed(opts.Seed)
		net      = NewNetwork(weights, rng, opts.ShuffleSweep)
		maxTries = opts.maxAttempts() // < 0 means unlimited
	)

	// Stage 3: attempt loop.
	var (
		attempt int
		temp    float64
		tour    Tour
		ok      bool
	)
	for attempt = 1; ; attempt++ {
		net.Reset() // entry to Initialized; also clears a failed grid

		// Cooling loop: sweep, observe, decay. Stops once temp falls to
		// (or below) the floor; the floor temperature itself is not swept.
		for temp = opts.StartTemp; temp > opts.MinTemp; temp *= opts.DecayRate {
			net.Sweep(temp)
			if opts.Observer != nil {
				opts.Observer.Observe(net.Snapshot(), attempt, temp)
			}
		}

		// Equilibrated? A permutation grid terminates the run.
		if tour, ok = Decode(net.Snapshot(), dist); ok {
			return Result{Tour: tour, Attempts: attempt}, nil
		}

		// Exhausted? Surface the terminal, non-fatal outcome.
		if maxTries > 0 && attempt >= maxTries {
			return Result{Attempts: attempt}, ErrAttemptsExhausted
		}
	}
}

// SweepsPerAttempt returns the exact number of sweeps one attempt runs
// under a geometric schedule: the count of temperatures start·decayᵏ that
// stay strictly above min, i.e. ceil(log(min/start)/log(decay)).
//
// Returns 0 for a malformed schedule (validated properly in Solve).
//
// Complexity: O(1).
func SweepsPerAttempt(start, min, decay float64) int {
	if validateSchedule(start, min, decay) != nil {
		return 0
	}

	// Both logs are negative, so the ratio is a positive sweep count.
	return int(math.Ceil(math.Log(min/start) / math.Log(decay)))
}
