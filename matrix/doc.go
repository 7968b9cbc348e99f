// Package matrix offers a small dense linear-algebra kernel for hand-sized
// matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 grid with bounds-checked At/Set and an
//     optional NaN/Inf guard.
//   - Elementwise kernels: Add, Sub, Scale, Transpose.
//   - Mul, the textbook triple-loop product.
//   - Determinant by recursive Laplace expansion, Minor, CofactorMatrix,
//     Adjugate, and the adjugate-based Inverse with a configurable singular
//     tolerance (DefaultSingularTolerance = 1e-10).
//
// Every kernel is a pure function: operands are never mutated and each call
// returns a freshly allocated *Dense (or a float64) or a sentinel error that
// can be matched with errors.Is. Functions are safe for concurrent use as long
// as callers do not mutate the operands concurrently.
//
// The cofactor-based determinant is O(n!) and intended for the small matrices
// a person types by hand (a few rows and columns).
package matrix
