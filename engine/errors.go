// SPDX-License-Identifier: MIT
// Package engine: sentinel error set.
// Precondition failures raised by the matrix kernels are NOT redeclared here;
// they surface unchanged (matrix.ErrDimensionMismatch, matrix.ErrIncompatibleDimensions,
// matrix.ErrNonSquare, matrix.ErrSingular) and are matched with errors.Is.

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation is returned for a tag or Operation value outside the fixed set.
	ErrUnknownOperation = errors.New("engine: unknown operation")

	// ErrMissingOperand is returned when a required operand (A, or B for binary ops) is absent.
	ErrMissingOperand = errors.New("engine: missing operand")

	// ErrTooLarge is returned when an operand exceeds Config.MaxDim rows or columns.
	ErrTooLarge = errors.New("engine: matrix exceeds the configured size bound")

	// ErrInvalidConfig is returned by Config.Validate and the config loaders.
	ErrInvalidConfig = errors.New("engine: invalid config")
)

// opErrorf prefixes err with the operation tag, preserving it for errors.Is.
func opErrorf(op Operation, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
