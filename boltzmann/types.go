// Package boltzmann - result types and sentinel errors.
//
// This file defines the terminal artifacts of a run (Tour, Result) and the
// ONLY error values the package returns. All entry points return these
// sentinels and tests check them via errors.Is. Invalid decode outcomes are
// NOT errors (see decode.go): a cooling run that ends in a non-permutation
// grid is a routine, recoverable event handled by the retry loop.
package boltzmann

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilDistances is returned when Solve receives a nil distance matrix.
	ErrNilDistances = errors.New("boltzmann: nil distance matrix")

	// ErrBadPenalty is returned when the constraint penalty is not strictly
	// positive or does not exceed the maximum pairwise distance. A penalty
	// at or below the longest edge under-penalizes invalid configurations,
	// and the network may prefer them.
	ErrBadPenalty = errors.New("boltzmann: penalty must be positive and exceed the maximum distance")

	// ErrBadBonus is returned when the activation bonus is not strictly
	// positive or not strictly below the penalty. Too small and the
	// all-inactive state is never disfavored; at or above the penalty the
	// constraint terms stop dominating.
	ErrBadBonus = errors.New("boltzmann: bonus must be positive and strictly below the penalty")

	// ErrBadSchedule is returned when the cooling schedule is malformed:
	// non-positive temperatures, MinTemp ≥ StartTemp, or a decay rate
	// outside (0,1) exclusive (the loop would never terminate).
	ErrBadSchedule = errors.New("boltzmann: invalid cooling schedule")

	// ErrAttemptsExhausted is returned when the configured attempt cap is
	// reached without decoding a valid tour. Terminal but not fatal: the
	// caller may retry with other parameters. Result.Attempts still carries
	// the number of attempts consumed.
	ErrAttemptsExhausted = errors.New("boltzmann: attempts exhausted without a valid tour")
)

// Tour is a decoded Hamiltonian cycle: an ordered visit of every city
// exactly once, closed back to the first city.
type Tour struct {
	// Order holds city indices by tour position: Order[p] is the city
	// visited at position p. len(Order) == n; the closing edge back to
	// Order[0] is implied and included in Distance.
	Order []int

	// Labels holds the city labels aligned with Order.
	Labels []string

	// Distance is the total cycle length, including the closing edge,
	// stabilized to 1e-9 to avoid cross-platform FP noise.
	Distance float64
}

// String renders the tour as a closed cycle with its total distance,
// e.g. "A -> C -> B -> D -> A (distance: 67)".
func (t Tour) String() string {
	if len(t.Labels) == 0 {
		return "(empty tour)"
	}
	var b strings.Builder
	var i int
	for i = 0; i < len(t.Labels); i++ {
		b.WriteString(t.Labels[i])
		b.WriteString(" -> ")
	}
	b.WriteString(t.Labels[0]) // close the cycle
	fmt.Fprintf(&b, " (distance: %g)", t.Distance)

	return b.String()
}

// Result holds the outcome of a Solve run.
type Result struct {
	// Tour is the decoded cycle. Meaningful only when Solve returned nil.
	Tour Tour

	// Attempts is the number of full cooling runs consumed, including the
	// successful one. Populated even when Solve returns ErrAttemptsExhausted.
	Attempts int
}
