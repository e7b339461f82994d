// SPDX-License-Identifier: MIT

// Package distmat - symmetric distance table construction & accessors.
//
// Purpose:
//   - Validate and freeze a city-distance table once, up front, so that the
//     solver layers never re-check shape or symmetry in hot loops.
//   - Accept the two ingestion shapes in the wild: a full square table and a
//     triangular label-keyed map where the transpose fills omissions.
//   - Keep the storage dense and symmetric (gonum mat.SymDense): one cell per
//     unordered pair, O(1) lookups, no aliasing with caller slices.
//
// Determinism:
//   - New preserves the caller's label order; FromTriangular sorts labels
//     ascending so the city indexing is stable across runs and platforms.
//
// Complexity quicksheet:
//   - New / FromTriangular: O(n²) validation + copy; Dist/Label: O(1);
//     Max: O(n²) once, cached at construction.

package distmat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// symTol is the structural tolerance for diagonal and symmetry checks.
// It is deliberately loose enough for file-parsed float input and tight
// enough to reject genuinely asymmetric tables.
const symTol = 1e-9

// Matrix is an immutable symmetric distance table over labelled cities.
// The zero value is not usable; construct via New or FromTriangular.
type Matrix struct {
	n      int           // number of cities (order)
	labels []string      // city labels, index-aligned with the storage
	d      *mat.SymDense // symmetric distances; diagonal is zero
	max    float64       // largest off-diagonal distance, cached
}

// New builds a Matrix from index-aligned labels and a full square table.
//
// Contract:
//   - len(labels) == len(table) == n, with n ≥ 2.
//   - Labels are non-empty and unique.
//   - table is square, finite, non-negative, symmetric within symTol, and
//     has a ~0 diagonal.
//
// Errors: ErrBadLabels, ErrNonSquare, ErrTooSmall, ErrNaNInf,
// ErrNegativeDistance, ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity: O(n²) time, O(n²) space (one copy into symmetric storage).
func New(labels []string, table [][]float64) (*Matrix, error) {
	// Stage 1: shape checks before touching any entry.
	var n = len(table)
	if n < 2 {
		return nil, ErrTooSmall
	}
	if err := validateLabels(labels, n); err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ { // every row must match the order
		if len(table[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Stage 2: entry checks (finite, diagonal, negativity, symmetry).
	var v, tv float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = table[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if i == j {
				if math.Abs(v) > symTol {
					return nil, ErrNonZeroDiagonal
				}
				continue
			}
			if v < 0 {
				return nil, ErrNegativeDistance
			}
		}
	}
	for i = 0; i < n; i++ { // upper triangle only; lower is the mirror
		for j = i + 1; j < n; j++ {
			v, tv = table[i][j], table[j][i]
			if math.Abs(v-tv) > symTol {
				return nil, ErrAsymmetry
			}
		}
	}

	// Stage 3: freeze into symmetric storage (independent of caller slices).
	return freeze(append([]string(nil), labels...), func(i, j int) float64 {
		return table[i][j]
	}, n), nil
}

// FromTriangular builds a Matrix from a triangular label-keyed map, the
// common hand-written file shape: each city appears as an outer key, and
// each unordered pair appears under at least one of its two cities. The
// transpose fills whichever direction was omitted.
//
// Contract:
//   - Outer keys define the city set (n ≥ 2); labels sort ascending.
//   - Inner keys must reference known cities (typos fail fast).
//   - A pair present in both directions must agree within symTol.
//   - Explicit self entries must be ~0.
//
// Errors: ErrTooSmall, ErrBadLabels, ErrMissingDistance, ErrNaNInf,
// ErrNegativeDistance, ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity: O(n² + E·log n) where E is the number of explicit entries.
func FromTriangular(entries map[string]map[string]float64) (*Matrix, error) {
	var n = len(entries)
	if n < 2 {
		return nil, ErrTooSmall
	}

	// Stage 1: stable label order (sorted outer keys) and the index map.
	labels := make([]string, 0, n)
	var a string
	for a = range entries {
		if a == "" {
			return nil, ErrBadLabels
		}
		labels = append(labels, a)
	}
	sort.Strings(labels)

	index := make(map[string]int, n)
	var i int
	for i = 0; i < n; i++ {
		index[labels[i]] = i
	}

	// Stage 2: reject inner keys outside the city set and bad self entries.
	var (
		b  string
		v  float64
		ok bool
	)
	for a = range entries {
		for b, v = range entries[a] {
			if _, ok = index[b]; !ok {
				return nil, ErrBadLabels
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if a == b && math.Abs(v) > symTol {
				return nil, ErrNonZeroDiagonal
			}
			if a != b && v < 0 {
				return nil, ErrNegativeDistance
			}
		}
	}

	// Stage 3: resolve every unordered pair, mirroring omissions.
	table := make([]float64, n*n) // row-major scratch; frozen below
	var (
		j        int
		fwd, rev float64
		hasF     bool
		hasR     bool
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			fwd, hasF = entries[labels[i]][labels[j]]
			rev, hasR = entries[labels[j]][labels[i]]
			switch {
			case hasF && hasR:
				// Both directions given: they must agree.
				if math.Abs(fwd-rev) > symTol {
					return nil, ErrAsymmetry
				}
			case hasF:
				rev = fwd
			case hasR:
				fwd = rev
			default:
				return nil, ErrMissingDistance
			}
			table[i*n+j] = fwd
			table[j*n+i] = fwd
		}
	}

	return freeze(labels, func(i, j int) float64 { return table[i*n+j] }, n), nil
}

// freeze copies validated distances into symmetric storage and caches the
// maximum off-diagonal entry. Internal: inputs are assumed validated.
func freeze(labels []string, at func(i, j int) float64, n int) *Matrix {
	d := mat.NewSymDense(n, nil)

	var (
		i, j int
		v    float64
		max  float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = at(i, j)
			d.SetSym(i, j, v)
			if v > max {
				max = v
			}
		}
	}

	return &Matrix{n: n, labels: labels, d: d, max: max}
}

// validateLabels enforces len(labels)==n, non-empty strings, uniqueness.
//
// Complexity: O(n) time, O(n) space.
func validateLabels(labels []string, n int) error {
	if len(labels) != n {
		return ErrBadLabels
	}
	seen := make(map[string]struct{}, n)

	var (
		i  int    // loop index
		id string // current label under validation
		ok bool   // presence flag in the 'seen' set
	)
	for i = 0; i < n; i++ {
		id = labels[i]
		if id == "" {
			return ErrBadLabels
		}
		if _, ok = seen[id]; ok {
			return ErrBadLabels
		}
		seen[id] = struct{}{}
	}

	return nil
}

// Order returns the number of cities.
func (m *Matrix) Order() int { return m.n }

// Labels returns a copy of the city labels in index order.
func (m *Matrix) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Label returns the label of city i. Panics on out-of-range i, as slice
// indexing would; index arithmetic is a programmer error, not user input.
func (m *Matrix) Label(i int) string { return m.labels[i] }

// Dist returns the distance between cities i and j (0 when i == j).
// Symmetric by construction: Dist(i,j) == Dist(j,i).
func (m *Matrix) Dist(i, j int) float64 {
	if i == j {
		return 0
	}

	return m.d.At(i, j)
}

// Max returns the largest pairwise distance in the table. Callers use it to
// size the constraint penalty (penalty must exceed Max for the energy
// landscape to disfavor invalid tours).
func (m *Matrix) Max() float64 { return m.max }
