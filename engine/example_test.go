package engine_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmatrix/engine"
	"github.com/katalvlaran/lvlmatrix/matrix"
)

func ExampleEngine_Dispatch() {
	eng := engine.NewDefault()
	A := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})

	res, _ := eng.Dispatch(engine.OpDeterminant, A, nil, 0)
	fmt.Println(res.Kind, res.Scalar)

	res, _ = eng.Dispatch(engine.OpTranspose, A, nil, 0)
	fmt.Print(res.Matrix)
	// Output:
	// scalar -2
	// [1, 3]
	// [2, 4]
}

func ExampleEngine_Execute() {
	req, _ := engine.DecodeRequest(strings.NewReader("op: determinant\na: [[1, 2, 3], [4, 5, 6]]\n"))
	_, err := engine.NewDefault().Execute(req)
	fmt.Println(err)
	fmt.Println(errors.Is(err, matrix.ErrNonSquare))
	// Output:
	// determinant requires a square matrix, got 2x3: matrix: matrix is not square
	// true
}
