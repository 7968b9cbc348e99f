// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced); Submatrix, minors and
//     cofactors drop a row and a column through it.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxInduce   = "Induced"  // method tag for Dense.Induced
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0 for every public constructor)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a nested row slice into a fresh Dense.
// MAIN DESCRIPTION:
//   - Ingestion point for user-typed grids (one inner slice per row).
//
// Implementation:
//   - Stage 1: resolve options; reject empty grids and ragged rows.
//   - Stage 2: copy row by row into the flat buffer, checking the numeric policy.
//
// Inputs:
//   - rows: r inner slices, each of the same length c (r,c ≥ 1).
//   - opts: numeric policy overrides (WithNoValidateNaNInf).
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrRaggedRows (row length differs from the first row).
//   - ErrNaNInf (non-finite cell under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The input is never retained; later edits to rows do not affect the result.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped with
// the caller's method context and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns m[row,col] or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v into m[row,col].
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: numeric policy check (NaN/Inf) when validateNaNInf is on.
//   - Stage 3: store.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (both wrapped with coordinates).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy (independent buffer, same policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// ToRows exports the matrix as a fresh nested slice (one inner slice per row).
// The result shares no memory with m.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String is a HUMAN-READABLE dump of rows for diagnostics, using %g.
// Presentation with fixed decimals lives in package render.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: reject empty index sets (public shapes are always ≥ 1×1).
//   - Stage 2: allocate result via NewDense, preserve numeric policy.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrInvalidDimensions (empty index set), ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// Hints:
//   - Minors are Induced(all rows but i, all cols but j); see Submatrix.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}
