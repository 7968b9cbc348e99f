// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Resize returns a rows×cols copy of m: the overlapping top-left block is
// preserved and every new cell is zero. This mirrors how an input grid keeps
// what the user typed while rows/cols are added or removed.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (rows<=0 or cols<=0).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Resize(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opResize, err)
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opResize, err)
	}
	keepR, keepC := min(rows, m.Rows()), min(cols, m.Cols())
	var i, j int
	var v float64
	for i = 0; i < keepR; i++ {
		for j = 0; j < keepC; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opResize, err)
			}
			out.data[i*cols+j] = v
		}
	}
	if d, ok := m.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal
// (==) entries. Nil operands are never equal.
func Equal(a, b Matrix) bool {
	ok, _ := AllClose(a, b, 0)

	return ok
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol in absolute value.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (returned together with false).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, err
	}
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if av == bv {
				continue
			}
			if math.Abs(av-bv) > tol || math.IsNaN(av-bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// MustFromRows is like NewDenseFromRows but panics on error.
// Intended for literals in examples and tests.
func MustFromRows(rows [][]float64) *Dense {
	m, err := NewDenseFromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustFromRows: %v", err))
	}

	return m
}

// ---------- Linear Algebra aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// Det is an alias for Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix, opts ...Option) (Matrix, error) { return Inverse(m, opts...) }
