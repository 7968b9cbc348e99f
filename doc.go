// Package lvlmatrix is a small matrix calculator: dense float64 matrices of
// the size a person types by hand, and the seven operations a calculator form
// offers on them.
//
// Layout:
//
//   - matrix: Dense storage and pure kernels (Add, Sub, Mul, Scale,
//     Transpose, Determinant, Minor, CofactorMatrix, Adjugate, Inverse).
//   - engine: the Operation selector, YAML requests and config, and the
//     dispatcher returning a tagged matrix-or-scalar Result.
//   - render: fixed-decimal text with near-zero snapping.
//   - cmd/matrixcalc: command-line front end.
//
// Quick start:
//
//	A := matrix.MustFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(A)         // [[0.6 -0.7] [-0.2 0.4]]
//	d, _ := matrix.Determinant(A)         // 10
//	_, err = matrix.Inverse(singular)     // errors.Is(err, matrix.ErrSingular)
//
// Determinants use cofactor (Laplace) expansion, which costs O(n!) and is meant
// for matrices up to roughly 8×8; the engine caps operands at 5×5 by default.
//
// All functions are synchronous and safe for concurrent use; no operand is
// ever modified.
package lvlmatrix
