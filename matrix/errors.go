// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All accessors return these sentinels (possibly wrapped with call-site context
// via fmt.Errorf("...: %w", ErrX)); tests match them with errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a ragged row literal or incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix receiver was used for access.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
