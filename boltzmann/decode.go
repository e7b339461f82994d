// Package boltzmann - tour extraction.
//
// Decode reads a converged activation grid and either reconstructs the
// encoded tour or reports that the grid does not encode one. Invalidity is
// a routine outcome of an attempt - the retry loop expects it - so Decode
// signals it with an ok flag, not an error.
package boltzmann

import (
	"math"

	"github.com/katalvlaran/boltztsp/distmat"
)

// roundScale controls final distance stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting the result.
const roundScale = 1e9

// Decode validates s as a permutation matrix and extracts the encoded tour.
//
// Validity rule: the grid encodes a tour iff every position (column) has
// exactly one active neuron AND every city (row) has exactly one active
// neuron. On a valid grid the city order is read off by position, and the
// distance sums consecutive legs plus the closing edge back to the start.
//
// Returns ok=false when the grid is not a permutation matrix, or when the
// grid side does not match dist (a mismatched snapshot cannot be decoded).
//
// Complexity: O(n²) time, O(n) space.
func Decode(s Snapshot, dist *distmat.Matrix) (Tour, bool) {
	var n = s.Cities()
	if dist == nil || n == 0 || n != dist.Order() {
		return Tour{}, false
	}

	// Stage 1: permutation check while collecting the city at each position.
	// cityAt[p] == c means neuron (c,p) is the sole active one in column p.
	var (
		cityAt   = make([]int, n) // city occupying each position
		rowCount = make([]int, n) // active neurons per city row
		city     int
		pos      int
		found    bool
	)
	for pos = 0; pos < n; pos++ {
		found = false
		for city = 0; city < n; city++ {
			if !s.Active(city, pos) {
				continue
			}
			if found {
				return Tour{}, false // two cities share one position
			}
			found = true
			cityAt[pos] = city
			rowCount[city]++
		}
		if !found {
			return Tour{}, false // empty position
		}
	}
	for city = 0; city < n; city++ {
		if rowCount[city] != 1 {
			return Tour{}, false // a city appears twice or never
		}
	}

	// Stage 2: materialize the tour and its cyclic distance.
	var (
		labels = make([]string, n)
		total  float64
	)
	for pos = 0; pos < n; pos++ {
		labels[pos] = dist.Label(cityAt[pos])
		total += dist.Dist(cityAt[pos], cityAt[(pos+1)%n]) // closing edge included
	}

	return Tour{Order: cityAt, Labels: labels, Distance: round1e9(total)}, true
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
