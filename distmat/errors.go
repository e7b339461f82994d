// SPDX-License-Identifier: MIT
// Package distmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// distmat package. Constructors MUST return these sentinels and tests MUST
// check them via errors.Is. No constructor panics on user-triggered error
// conditions.

package distmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "distmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNonSquare signals that the supplied table is not square
	// (row count differs from column count, or a ragged row).
	ErrNonSquare = errors.New("distmat: distance table is not square")

	// ErrTooSmall signals an instance with fewer than two cities; a tour
	// needs at least two distinct cities to be meaningful.
	ErrTooSmall = errors.New("distmat: fewer than two cities")

	// ErrNegativeDistance signals a negative off-diagonal entry.
	ErrNegativeDistance = errors.New("distmat: negative distance")

	// ErrNonZeroDiagonal signals a diagonal entry outside the zero
	// tolerance; a city is at distance 0 from itself by definition.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal not zero within eps")

	// ErrAsymmetry signals |d(a,b) − d(b,a)| above the symmetry tolerance.
	ErrAsymmetry = errors.New("distmat: distance table is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf entry; all distances must be finite.
	ErrNaNInf = errors.New("distmat: NaN or Inf distance")

	// ErrBadLabels signals a label set that does not match the table order,
	// or contains empty or duplicate labels.
	ErrBadLabels = errors.New("distmat: invalid city labels")

	// ErrMissingDistance signals a city pair absent from a triangular
	// specification in both directions.
	ErrMissingDistance = errors.New("distmat: missing distance for city pair")
)
