// Package boltzmann - test-only access to internals.
// Compiled only with the test binary; lets the external test package
// fabricate grid states without widening the public API.
package boltzmann

import "math/rand"

// RNGForTest returns a generator under the package seed policy (0 ⇒ the
// fixed default stream), for tests that drive a Network directly.
func RNGForTest(seed int64) *rand.Rand { return rngFromSeed(seed) }

// NewSnapshotForTest builds a Snapshot from a row-major activation grid.
func NewSnapshotForTest(cities int, active []bool) Snapshot {
	cp := make([]bool, len(active))
	copy(cp, active)

	return Snapshot{cities: cities, active: cp}
}

// SetActiveForTest forces the activation of neuron (city, pos).
func (net *Network) SetActiveForTest(city, pos int, v bool) {
	net.state[net.weights.Index(city, pos)] = v
}
