// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/lvlmatrix/matrix"

// ResultKind tags which field of a Result is populated.
type ResultKind uint8

const (
	KindMatrix ResultKind = iota + 1
	KindScalar
)

// String returns "matrix" or "scalar".
func (k ResultKind) String() string {
	switch k {
	case KindMatrix:
		return "matrix"
	case KindScalar:
		return "scalar"
	default:
		return "invalid"
	}
}

// Result is the outcome of a dispatched operation.
// Determinant yields KindScalar; every other operation yields KindMatrix.
type Result struct {
	Kind   ResultKind
	Matrix *matrix.Dense
	Scalar float64
}

// IsMatrix reports whether r carries a matrix.
func (r Result) IsMatrix() bool { return r.Kind == KindMatrix && r.Matrix != nil }

// IsScalar reports whether r carries a scalar.
func (r Result) IsScalar() bool { return r.Kind == KindScalar }

func matrixResult(m matrix.Matrix) (Result, error) {
	d, err := asDense(m)
	if err != nil {
		return Result{}, err
	}

	return Result{Kind: KindMatrix, Matrix: d}, nil
}

func scalarResult(v float64) Result { return Result{Kind: KindScalar, Scalar: v} }

// asDense returns m as *matrix.Dense, copying through Resize when the kernel
// handed back another implementation.
func asDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}

	return matrix.Resize(m, m.Rows(), m.Cols())
}
