// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels are
// returned wrapped with the operation tag, e.g. "Mul: matrix: incompatible
// dimensions"; callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index/NaN -> dimension precondition -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that an input grid is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates that rows of an input grid differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that elementwise operands differ in shape (Add/Sub).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleDimensions indicates a.Cols != b.Rows in a product.
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions for multiplication")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| falls below the singular tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
