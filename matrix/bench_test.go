// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlmatrix/matrix"
)

// benchSizes covers the hand-typed range; cofactor expansion is O(n!).
var benchSizes = []int{2, 3, 4, 5}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			B := MustDense(b, n, n)
			RandomFill(b, A, 1337)
			RandomFill(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			B := MustDense(b, n, n)
			RandomFill(b, A, 7)
			RandomFill(b, B, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			RandomFill(b, A, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomInvertible(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
