// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// roundTripTol is the tolerance for A·A⁻¹ ≈ I checks.
const roundTripTol = 1e-6

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from nested rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// Rows exports any Matrix as nested rows for require.Equal comparisons.
func Rows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RequireAllClose fails unless a and b have the same shape and agree within tol.
func RequireAllClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, MustAt(t, want, i, j), MustAt(t, got, i, j), tol, "cell [%d,%d]", i, j)
		}
	}
}

// RandomFill fills m with deterministic pseudo-random values in [-10, 10).
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Float64()*20-10)
		}
	}
}

// RandomInvertible returns a seeded n×n matrix whose determinant is
// comfortably away from zero (|det| ≥ 1), retrying with the next seed.
func RandomInvertible(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	for s := seed; ; s++ {
		m := MustDense(t, n, n)
		RandomFill(t, m, s)
		d, err := matrix.Determinant(m)
		require.NoError(t, err)
		if math.Abs(d) >= 1 {
			return m
		}
	}
}
