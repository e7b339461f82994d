// Package boltzmann - weight model.
//
// BuildWeights derives the static pairwise weight tensor and per-neuron
// bias that encode a TSP instance as a constraint-satisfaction energy
// landscape. A neuron is the proposition "city c occupies tour position p";
// for n cities there are n² neurons, flat-indexed as c·n + p.
//
// Weight rule (w is symmetric; self-interaction is zero):
//   - same position, different cities  → −penalty (one city per stop)
//   - same city, different positions   → −penalty (one stop per city)
//   - different cities, cyclically adjacent positions → −distance(a,b)
//     (consecutive stops cost their edge; only forward-adjacent epochs
//     interact, and symmetry supplies the mirrored direction)
//   - everything else → 0
//
// The bias (the "bonus") is constant across neurons and rewards activation,
// so the all-inactive grid is not a trivial equilibrium. The tensor is
// computed once per run and shared read-only by every attempt.
package boltzmann

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/boltztsp/distmat"
)

// Weights is the static energy landscape of one TSP instance: a symmetric
// n²×n² tensor plus a uniform activation bias. Read-only after construction.
type Weights struct {
	cities int           // n: number of cities (grid side)
	bias   float64       // uniform activation bonus
	w      *mat.SymDense // pairwise weights over n² neurons; diagonal zero
}

// BuildWeights computes the weight tensor and bias for dist under the given
// penalty and bonus. Pure function of its inputs; no side effects.
//
// Contract:
//   - dist non-nil (its shape/symmetry were enforced at construction).
//   - penalty > max pairwise distance; 0 < bonus < penalty.
//
// Errors: ErrNilDistances, ErrBadPenalty, ErrBadBonus.
//
// Complexity: O(n⁴) time, O(n⁴) space — one cell per unordered neuron
// pair. Inherent to the model: every neuron may interact with every other.
func BuildWeights(dist *distmat.Matrix, penalty, bonus float64) (*Weights, error) {
	if err := validateEnergy(dist, penalty, bonus); err != nil {
		return nil, err
	}

	var (
		n       = dist.Order()
		neurons = n * n
		w       = mat.NewSymDense(neurons, nil)
	)

	// Enumerate unordered neuron pairs; SetSym mirrors each value, so the
	// tensor is symmetric by construction and the diagonal stays zero.
	var (
		a, b            int     // flat neuron indices, a < b
		cityA, posA     int     // decomposition of a
		cityB, posB     int     // decomposition of b
		v               float64 // weight for the current pair
		fwdAdj, backAdj bool    // cyclic position adjacency flags
	)
	for a = 0; a < neurons; a++ {
		cityA, posA = a/n, a%n
		for b = a + 1; b < neurons; b++ {
			cityB, posB = b/n, b%n

			switch {
			case posA == posB:
				// Same epoch, necessarily different cities (a < b).
				v = -penalty
			case cityA == cityB:
				// Same city at two different epochs.
				v = -penalty
			default:
				// Distinct city and epoch: only cyclically adjacent
				// epochs interact, charged with the travel distance.
				fwdAdj = posB == (posA+1)%n
				backAdj = posA == (posB+1)%n
				if fwdAdj || backAdj {
					v = -dist.Dist(cityA, cityB)
				} else {
					v = 0
				}
			}

			if v != 0 {
				w.SetSym(a, b, v)
			}
		}
	}

	return &Weights{cities: n, bias: bonus, w: w}, nil
}

// At returns the pairwise weight between neurons a and b (flat indices).
// At(i, i) == 0 for every i: neurons never excite or inhibit themselves.
func (w *Weights) At(a, b int) float64 { return w.w.At(a, b) }

// Bias returns the uniform activation bonus added to every consensus.
func (w *Weights) Bias() float64 { return w.bias }

// Cities returns n, the number of cities (and tour positions).
func (w *Weights) Cities() int { return w.cities }

// Neurons returns n², the total neuron count.
func (w *Weights) Neurons() int { return w.cities * w.cities }

// Index maps a (city, position) pair to its flat neuron index.
func (w *Weights) Index(city, pos int) int { return city*w.cities + pos }

// CityPos decomposes a flat neuron index into its (city, position) pair.
func (w *Weights) CityPos(idx int) (city, pos int) {
	return idx / w.cities, idx % w.cities
}
