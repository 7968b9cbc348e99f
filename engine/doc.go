// SPDX-License-Identifier: MIT

// Package engine is the calculator layer over package matrix.
//
// It names the seven operations a user can pick (add, subtract, multiply,
// scalar, transpose, determinant, inverse), routes each to the matching
// kernel and returns a tagged Result: a scalar for determinant, a matrix for
// everything else.
//
//	eng := engine.NewDefault()
//	res, err := eng.Dispatch(engine.OpDeterminant, A, nil, 0)
//	if errors.Is(err, matrix.ErrNonSquare) { ... }
//
// Requests and settings can be read from YAML:
//
//	req, _ := engine.DecodeRequest(strings.NewReader("op: transpose\na: [[1, 2]]\n"))
//	res, _ := eng.Execute(req)
//
// Kernel failures keep their matrix sentinels (ErrDimensionMismatch,
// ErrIncompatibleDimensions, ErrNonSquare, ErrSingular) behind an
// operation-tag prefix. The engine adds ErrUnknownOperation, ErrMissingOperand,
// ErrTooLarge and ErrInvalidConfig.
package engine
