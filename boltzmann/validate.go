// Package boltzmann - validation shared by the Solve entry point.
//
// Small, tight helpers that check Options internal consistency and the
// Options↔distance cross constraints. Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(1): the distance matrix is already validated by its constructor.
package boltzmann

import "github.com/katalvlaran/boltztsp/distmat"

// validateAll verifies Options against a distance matrix. The matrix itself
// is trusted (distmat constructors enforce shape/symmetry/negativity); only
// the scalar parameters and their relation to the distance scale are
// checked here.
//
// Complexity: O(1) (distmat caches its maximum distance).
func validateAll(dist *distmat.Matrix, opts Options) error {
	// Stage 1: presence.
	if dist == nil {
		return ErrNilDistances
	}

	// Stage 2: schedule sanity (each rejection keeps the loop terminating).
	if err := validateSchedule(opts.StartTemp, opts.MinTemp, opts.DecayRate); err != nil {
		return err
	}

	// Stage 3: energy-landscape scalars against the distance scale.
	return validateEnergy(dist, opts.Penalty, opts.Bonus)
}

// validateEnergy checks the penalty/bonus scalars against the distance
// scale. Shared by Solve (via validateAll) and BuildWeights, which is also
// a public entry point.
//
// Complexity: O(1).
func validateEnergy(dist *distmat.Matrix, penalty, bonus float64) error {
	if dist == nil {
		return ErrNilDistances
	}
	if penalty <= 0 || penalty <= dist.Max() {
		return ErrBadPenalty
	}
	if bonus <= 0 || bonus >= penalty {
		return ErrBadBonus
	}

	return nil
}

// validateSchedule checks the geometric cooling parameters in isolation.
//
// Complexity: O(1).
func validateSchedule(start, min, decay float64) error {
	if start <= 0 || min <= 0 || min >= start {
		return ErrBadSchedule
	}
	// decay==1 never cools; decay==0 collapses in one step and divides by
	// zero in the sweep-count formula. Both excluded.
	if decay <= 0 || decay >= 1 {
		return ErrBadSchedule
	}

	return nil
}
