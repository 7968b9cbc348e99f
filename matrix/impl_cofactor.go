// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Determinant by recursive Laplace (cofactor) expansion along the first row.
//   - Minors, cofactor matrix, adjugate and the adjugate-based Inverse.
//
// Determinism & Performance:
//   - Expansion is O(n!) and intended for the small, hand-typed matrices this
//     package serves (n ≤ 5 means at most 120 base-case evaluations).
//   - Every submatrix is a fresh copy; inputs are never mutated.
//   - Fixed loop orders (column j ascending in the expansion, i→j for cofactors).
//
// Hints:
//   - For large n use an LU-based determinant instead; this file favors the
//     textbook formula so results match the closed-form cofactor definition.

package matrix

import (
	"fmt"
	"math"
)

// denseOf returns m as *Dense, copying through At when m is another
// implementation. The caller has already validated m is non-nil.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// cofactorSign returns +1 when k is even and -1 when k is odd.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// indicesWithout returns 0..n-1 with skip left out.
func indicesWithout(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != skip {
			idx = append(idx, k)
		}
	}

	return idx
}

// dropRowCol copies d without row `row` and column `col` through Induced.
// Assumes d is at least 2×2 and indices are in range, so Induced cannot fail.
// Complexity: O(r*c).
func dropRowCol(d *Dense, row, col int) *Dense {
	out, _ := d.Induced(indicesWithout(d.r, row), indicesWithout(d.c, col))

	return out
}

// det is the recursive Laplace expansion along row 0 on a validated square Dense.
//   - n == 1: the sole entry.
//   - n == 2: a00*a11 - a01*a10.
//   - n > 2 : Σ_j (-1)^j * a0j * det(minor(0, j)).
func det(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	sum := ZeroSum
	for j := 0; j < d.c; j++ {
		sum += cofactorSign(j) * d.data[j] * det(dropRowCol(d, 0, j))
	}

	return sum
}

// Submatrix returns a copy of m with row `row` and column `col` removed.
// Implementation:
//   - Stage 1: ValidateNotNil; check indices; a 1-row or 1-col input has no
//     non-empty submatrix.
//   - Stage 2: Induced over every row but `row` and every column but `col`.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions (result would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Submatrix(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opSubmatrix, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, matrixErrorf(opSubmatrix, ErrInvalidDimensions)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	sub, err := d.Induced(indicesWithout(d.r, row), indicesWithout(d.c, col))
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return sub, nil
}

// Determinant computes det(m) by recursive cofactor expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: base cases 1×1 and 2×2; otherwise expand along row 0,
//     recursing on (n-1)×(n-1) minors.
//
// Returns:
//   - float64: the determinant as IEEE-754 double (no cancellation handling).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(d), nil
}

// Minor returns det(Submatrix(m, row, col)).
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrInvalidDimensions (1×1 input).
func Minor(m Matrix, row, col int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	sub, err := Submatrix(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return det(sub), nil
}

// cofactors builds C[i,j] = (-1)^(i+j) * det(minor(i,j)) on a validated square Dense.
// A 1×1 input yields [[1]] (the empty minor has determinant 1).
func cofactors(d *Dense) *Dense {
	n := d.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: d.validateNaNInf}
	if n == 1 {
		out.data[0] = 1

		return out
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = cofactorSign(i+j) * det(dropRowCol(d, i, j))
		}
	}

	return out
}

// CofactorMatrix returns the matrix of signed minors of m.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: for every (i,j) in i→j order, C[i,j] = (-1)^(i+j) * Minor(m,i,j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func CofactorMatrix(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return cofactors(d), nil
}

// Adjugate returns adj(m) = CofactorMatrix(m)ᵀ.
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (Matrix, error) {
	c, err := CofactorMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	t, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return t, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve options.
//   - Stage 2: d = det(m); reject |d| < tolerance (or d == 0 when tolerance is 0).
//   - Stage 3: 1×1 → [[1/a]]; otherwise divide the adjugate by d.
//
// Inputs:
//   - m: non-nil square matrix.
//   - opts: WithSingularTolerance overrides DefaultSingularTolerance (1e-10).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrNaNInf (non-finite determinant).
//
// Complexity:
//   - Dominated by the cofactor matrix: O(n^2 · (n-1)!).
//
// Notes:
//   - The tolerance is absolute; matrices with tiny entries may be rejected even
//     when invertible. Scale inputs or pass a smaller tolerance when needed.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	dv := det(d)
	if isNonFinite(dv) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("determinant %v: %w", dv, ErrNaNInf))
	}
	if math.Abs(dv) < o.singularTol || dv == 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("|det| = %g < %g: %w", math.Abs(dv), o.singularTol, ErrSingular))
	}

	n := d.r
	if n == 1 {
		out, _ := NewDense(1, 1)
		out.data[0] = 1 / d.data[0]

		return out, nil
	}

	// adj[i,j] = C[j,i]; write the transpose directly while dividing.
	c := cofactors(d)
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = c.data[j*n+i] / dv
		}
	}

	return out, nil
}
