// Package boltzmann - RNG utilities.
//
// This file centralizes deterministic random generation for the stochastic
// network. One seedable generator drives every draw of a run - acceptance
// samples and optional sweep-order shuffles alike - so the entire cooling
// trajectory is reproducible from the seed. No time-based sources hidden
// anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The run is single-threaded by
//     contract; do not share the generator across goroutines.
package boltzmann

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
