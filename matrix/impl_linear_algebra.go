// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, transpose and matrix
// multiplication. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical elementwise and product kernels used by the engine dispatcher.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with the same loop order.
//   - Determinant, cofactors and Inverse live in impl_cofactor.go.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for inner products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opSubmatrix   = "Submatrix"
	opCofactor    = "CofactorMatrix"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opResize      = "Resize"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense (single flat loop 0..n-1);
//     otherwise fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (not nil, A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with At.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIncompatibleDimensions (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (alpha is NaN or ±Inf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, fmt.Errorf("alpha %v: %w", alpha, ErrNaNInf))
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}
