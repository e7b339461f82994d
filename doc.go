// Package boltztsp approximates Travelling Salesman tours with a
// stochastic Hopfield-style network annealed toward valid solutions.
//
// 🚀 What is boltztsp?
//
//	A small, deterministic-by-seed library that brings together:
//		• Distance tables: immutable symmetric city-distance matrices
//		• Weight derivation: penalty/bonus energy landscape over an N×N grid
//		• Stochastic updates: logistic (Boltzmann) acceptance under temperature
//		• Annealing control: geometric cooling, validity check, retry loop
//		• Tour decoding: permutation-matrix check + cyclic distance
//
// ✨ Why choose boltztsp?
//
//   - Reproducible – one seedable RNG drives the whole trajectory
//   - Honest contracts – sentinel errors, no panics on user input
//   - Pure Go – no cgo; gonum for dense symmetric storage
//   - Observable – attach a read-only per-sweep snapshot observer
//
// Under the hood, everything is organized under two subpackages:
//
//	distmat/   — symmetric distance matrices built from full or triangular input
//	boltzmann/ — weight model, network, annealing controller, tour extraction
//
// Quick ASCII example of a converged 4-city activation grid:
//
//	     1   2   3   4
//	   A | O | - | - | - |
//	   B | - | - | O | - |
//	   C | - | O | - | - |
//	   D | - | - | - | O |
//
//	decodes to the cycle A -> C -> B -> D -> A.
//
// The network is a heuristic: it anneals toward low-energy states that
// encode valid tours, retrying from a fresh grid when a cooling run ends
// in an invalid configuration. See boltzmann.Solve for the entry point
// and cmd/boltztsp for a thin command-line front end.
//
//	go get github.com/katalvlaran/boltztsp
package boltztsp
