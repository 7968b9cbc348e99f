// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrIncompatibleDimensions))
	}

	return nil
}
