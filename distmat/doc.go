// SPDX-License-Identifier: MIT

// Package distmat provides immutable symmetric distance matrices keyed by
// city labels.
//
// A Matrix is the read-only input to the Boltzmann TSP machinery: a square,
// symmetric, non-negative table with a zero diagonal, built either from a
// full table (New) or from a triangular label-keyed map (FromTriangular)
// where missing mirror entries are filled from the transpose.
//
// Design:
//   - Immutable after construction; all accessors are read-only.
//   - Strict sentinel errors (errors.Is), no panics on user input.
//   - Dense symmetric storage via gonum's mat.SymDense.
//   - Deterministic label order: FromTriangular sorts labels ascending.
//
// Use this package to prepare instances for boltzmann.Solve.
package distmat
