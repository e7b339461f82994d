// Package boltzmann - read-only observation of the annealing process.
//
// Observation is a pure side channel: the controller hands an Observer an
// immutable snapshot of the activation grid after each sweep, together with
// the attempt index and the temperature that sweep ran at. Observation
// never consumes RNG draws and never mutates network state, so a run
// decodes the same tour whether or not an observer is attached.
package boltzmann

// Snapshot is an immutable copy of the activation grid at a sweep boundary.
// Rows are cities, columns are tour positions.
type Snapshot struct {
	cities int
	active []bool // row-major copy, len cities²
}

// Cities returns the grid side n (cities and positions alike).
func (s Snapshot) Cities() int { return s.cities }

// Active reports whether the neuron (city, pos) was active.
func (s Snapshot) Active(city, pos int) bool {
	return s.active[city*s.cities+pos]
}

// ActiveCount returns the number of active neurons in the grid. A valid
// tour grid has exactly Cities() active neurons.
func (s Snapshot) ActiveCount() int {
	var count int
	var i int
	for i = 0; i < len(s.active); i++ {
		if s.active[i] {
			count++
		}
	}

	return count
}

// Observer receives per-sweep snapshots. Implementations must treat the
// snapshot as read-only and must not block: the controller calls Observe
// synchronously between sweeps.
type Observer interface {
	// Observe is called once after every sweep with the attempt index
	// (1-based), the temperature the sweep ran at, and the grid state.
	Observe(s Snapshot, attempt int, temp float64)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(s Snapshot, attempt int, temp float64)

// Observe implements Observer.
func (f ObserverFunc) Observe(s Snapshot, attempt int, temp float64) {
	f(s, attempt, temp)
}
