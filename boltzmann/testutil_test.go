// Package boltzmann_test provides lightweight testing helpers shared
// across *_test.go files in this package. The helpers are intentionally
// minimal and avoid duplicating functionality that already lives in
// focused test files.
package boltzmann_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boltztsp/boltzmann"
	"github.com/katalvlaran/boltztsp/distmat"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used wherever a fixed trajectory
	// is asserted (0 maps to the package's default stream).
	seedDet = int64(42)

	// penaltyRef / bonusRef are the reference energy scalars from the
	// 5-city scenario: penalty well above the longest edge, bonus on the
	// order of it.
	penaltyRef = 500.0
	bonusRef   = 50.0
)

// fiveCities returns the canonical 5-city instance used across tests.
// Longest edge is 42, so penaltyRef dominates every distance.
func fiveCities(t *testing.T) *distmat.Matrix {
	t.Helper()
	m, err := distmat.New(
		[]string{"A", "B", "C", "D", "E"},
		[][]float64{
			{0, 10, 20, 5, 18},
			{10, 0, 15, 32, 10},
			{20, 15, 0, 25, 16},
			{5, 32, 25, 0, 42},
			{18, 10, 16, 42, 0},
		},
	)
	require.NoError(t, err)

	return m
}

// sixCities returns a slightly larger instance for exhaustion tests.
func sixCities(t *testing.T) *distmat.Matrix {
	t.Helper()
	m, err := distmat.New(
		[]string{"P", "Q", "R", "S", "T", "U"},
		[][]float64{
			{0, 12, 29, 22, 13, 24},
			{12, 0, 19, 3, 25, 6},
			{29, 19, 0, 21, 23, 28},
			{22, 3, 21, 0, 4, 5},
			{13, 25, 23, 4, 0, 16},
			{24, 6, 28, 5, 16, 0},
		},
	)
	require.NoError(t, err)

	return m
}

// refOptions returns the reference configuration of the 5-city scenario
// with a deterministic seed and a generous attempt cap.
func refOptions() boltzmann.Options {
	opts := boltzmann.DefaultOptions()
	opts.Penalty = penaltyRef
	opts.Bonus = bonusRef
	opts.Seed = seedDet
	opts.MaxAttempts = 50

	return opts
}

// cyclicDistance recomputes a tour's distance straight from the matrix,
// independent of the solver's own accumulation.
func cyclicDistance(m *distmat.Matrix, order []int) float64 {
	var (
		sum float64
		i   int
		n   = len(order)
	)
	for i = 0; i < n; i++ {
		sum += m.Dist(order[i], order[(i+1)%n])
	}

	return sum
}

// Repeat runs fn as n sequential subtests; used for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		t.Run("", fn)
	}
}
