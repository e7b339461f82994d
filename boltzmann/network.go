// Package boltzmann - the stochastic network.
//
// Network owns the binary activation grid for the duration of one attempt
// and performs the Boltzmann-machine update rule: each neuron's consensus
// (bias plus weighted sum of the other active neurons) feeds a logistic
// acceptance probability tempered by the current temperature. High
// temperature pushes every probability toward 0.5 (near-random
// exploration); temperature near the floor makes activation follow the
// consensus sign almost deterministically (exploitation).
//
// Contracts:
//   - Single-threaded: the grid is owned by one in-flight attempt and no
//     update runs concurrently with another. Sweeps are sequenced against
//     temperature decay by the controller.
//   - Consensus is recomputed from live activations on every query; no
//     caching across updates, since any other neuron may have flipped.
//   - Updates never fail: a stochastic outcome is part of the contract.
package boltzmann

import (
	"math"
	"math/rand"
)

// Network holds the mutable neuron grid of one attempt plus the shared
// read-only weights and the run's single RNG.
type Network struct {
	weights *Weights
	rng     *rand.Rand
	state   []bool // activation grid, row-major by city, len n²
	order   []int  // neuron visit order, reshuffled per sweep when enabled
	shuffle bool   // randomize visit order each sweep
}

// NewNetwork creates a network over w with all neurons inactive.
// The rng is the run's single generator; nil falls back to the
// deterministic default stream (seed==0 policy).
func NewNetwork(w *Weights, rng *rand.Rand, shuffle bool) *Network {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var (
		neurons = w.Neurons()
		order   = make([]int, neurons)
		i       int
	)
	for i = 0; i < neurons; i++ {
		order[i] = i // canonical row-major visit order
	}

	return &Network{
		weights: w,
		rng:     rng,
		state:   make([]bool, neurons),
		order:   order,
		shuffle: shuffle,
	}
}

// Reset deactivates every neuron, returning the grid to its initial state.
// Deterministic on purpose: with a fixed seed, two attempts reset the same
// way and replay identical trajectories.
func (net *Network) Reset() {
	var i int
	for i = 0; i < len(net.state); i++ {
		net.state[i] = false
	}
}

// Consensus computes the net input driving neuron i's stochastic decision:
// bias + Σ over the other active neurons of their pairwise weight with i.
// Recomputed from current activations on each call.
//
// Complexity: O(n²) per neuron (every other neuron may contribute).
func (net *Network) Consensus(i int) float64 {
	var (
		sum = net.weights.Bias()
		j   int
	)
	for j = 0; j < len(net.state); j++ {
		// weights.At(i,i)==0, so the self term contributes nothing and
		// needs no branch.
		if net.state[j] {
			sum += net.weights.At(i, j)
		}
	}

	return sum
}

// Update performs one stochastic update of neuron i at the given
// temperature and returns the new activation. Acceptance probability is
// the logistic p = 1 / (1 + exp(−consensus/temp)); one uniform draw in
// [0,1) decides. math.Exp saturates cleanly at extreme arguments, so the
// probability degrades to exactly 0 or 1 rather than overflowing.
func (net *Network) Update(i int, temp float64) bool {
	var (
		p      = 1 / (1 + math.Exp(-net.Consensus(i)/temp))
		active = net.rng.Float64() < p
	)
	net.state[i] = active

	return active
}

// Sweep performs exactly one Update for every neuron at a single
// temperature. Visit order is fixed row-major, or freshly shuffled from
// the run's RNG when the network was built with shuffle enabled (either
// satisfies the update contract; the choice selects the trajectory).
//
// Complexity: O(n⁴) per sweep — n² updates at O(n²) consensus each.
func (net *Network) Sweep(temp float64) {
	if net.shuffle {
		shuffleIntsInPlace(net.order, net.rng)
	}

	var k int
	for k = 0; k < len(net.order); k++ {
		net.Update(net.order[k], temp)
	}
}

// Active reports the activation of neuron (city, pos).
func (net *Network) Active(city, pos int) bool {
	return net.state[net.weights.Index(city, pos)]
}

// Cities returns the grid side n.
func (net *Network) Cities() int { return net.weights.cities }

// Snapshot returns an immutable deep copy of the activation grid. Taken at
// sweep boundaries only, so observers never see a partially updated state.
func (net *Network) Snapshot() Snapshot {
	cp := make([]bool, len(net.state))
	copy(cp, net.state)

	return Snapshot{cities: net.weights.cities, active: cp}
}
