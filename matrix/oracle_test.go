// Package matrix_test cross-checks the cofactor kernels against gonum's LU-based
// Det and Inverse on seeded random inputs.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvlmatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies a Matrix into a gonum Dense.
func toGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	g := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			g.Set(i, j, MustAt(t, m, i, j))
		}
	}

	return g
}

func TestDeterminant_MatchesGonum(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		for seed := int64(0); seed < 8; seed++ {
			n, seed := n, seed
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				A := MustDense(t, n, n)
				RandomFill(t, A, seed*101+int64(n))

				got, err := matrix.Determinant(A)
				require.NoError(t, err)
				want := mat.Det(toGonum(t, A))
				require.InDelta(t, want, got, math.Max(1e-6, 1e-9*math.Abs(want)))
			})
		}
	}
}

func TestInverse_MatchesGonum(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := RandomInvertible(t, n, int64(500+n))

			got, err := matrix.Inverse(A)
			require.NoError(t, err)

			var want mat.Dense
			require.NoError(t, want.Inverse(toGonum(t, A)))
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					w := want.At(i, j)
					require.InDelta(t, w, MustAt(t, got, i, j), math.Max(1e-6, 1e-8*math.Abs(w)), "cell [%d,%d]", i, j)
				}
			}
		})
	}
}

func TestMul_MatchesGonum(t *testing.T) {
	A := MustDense(t, 2, 3)
	B := MustDense(t, 3, 4)
	RandomFill(t, A, 3)
	RandomFill(t, B, 4)

	got, err := matrix.Mul(A, B)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(t, A), toGonum(t, B))
	r, c := want.Dims()
	require.Equal(t, got.Rows(), r)
	require.Equal(t, got.Cols(), c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), 1e-12)
		}
	}
}
