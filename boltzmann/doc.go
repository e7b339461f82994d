// Package boltzmann approximates TSP tours with a stochastic
// Boltzmann-machine (Hopfield-style) network.
//
// The instance is encoded on an n×n grid of binary neurons, one per
// (city, position) proposition. BuildWeights turns the distance matrix and
// two scalars (penalty, bonus) into a static energy landscape whose
// low-energy states are valid tours:
//
//   - Constraint terms (−penalty) forbid two cities in one position and
//     one city in two positions.
//   - Distance terms (−distance) charge cyclically adjacent positions
//     with their travel cost.
//   - The bonus biases every neuron toward activation, so the empty grid
//     is not an equilibrium.
//
// Solve anneals the network under a geometric temperature schedule: every
// sweep updates each neuron once with logistic (Boltzmann) acceptance,
// and the temperature decays until the floor. Cooling runs that end in an
// invalid grid are retried from a fresh grid, up to an attempt cap.
//
//   - Complexity: O(n⁴) per sweep; schedule length is closed-form
//     (see SweepsPerAttempt).
//
//   - Determinism: one seedable RNG drives the whole trajectory; the same
//     instance, options and seed always decode the same tour.
//
// The network is a heuristic, not an exact solver: it returns a valid
// tour whose reported distance is exactly the sum of its edges, with no
// optimality guarantee. Use it on small instances (n ≲ 15) — the n⁴
// neuron-interaction structure is inherent to the model.
package boltzmann
