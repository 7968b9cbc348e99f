// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/lvlmatrix/matrix"
)

// Engine routes operations to the matrix kernels under a fixed Config.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg  Config
	opts []matrix.Option
}

// New validates cfg and returns an Engine bound to it.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		cfg:  cfg,
		opts: []matrix.Option{matrix.WithSingularTolerance(cfg.SingularTolerance)},
	}, nil
}

// NewDefault returns an Engine using DefaultConfig.
func NewDefault() *Engine {
	e, _ := New(DefaultConfig())

	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Dispatch runs op over a (and b for add, subtract, multiply; k for scalar).
// Operands are never modified. Kernel errors are returned wrapped with the
// operation tag, so errors.Is still matches the matrix sentinels.
func (e *Engine) Dispatch(op Operation, a, b matrix.Matrix, k float64) (Result, error) {
	if !op.Valid() {
		return Result{}, fmt.Errorf("%s: %w", op, ErrUnknownOperation)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return Result{}, opErrorf(op, fmt.Errorf("operand a: %w", ErrMissingOperand))
	}
	if err := e.checkSize("a", a); err != nil {
		return Result{}, opErrorf(op, err)
	}
	if op.Binary() {
		if err := matrix.ValidateNotNil(b); err != nil {
			return Result{}, opErrorf(op, fmt.Errorf("operand b: %w", ErrMissingOperand))
		}
		if err := e.checkSize("b", b); err != nil {
			return Result{}, opErrorf(op, err)
		}
	}

	if op == OpDeterminant || op == OpInverse {
		if err := requireSquare(op, a); err != nil {
			return Result{}, err
		}
	}

	res, err := e.run(op, a, b, k)
	if err != nil {
		return Result{}, opErrorf(op, err)
	}

	return res, nil
}

// Execute builds the operands of req and dispatches it.
func (e *Engine) Execute(req Request) (Result, error) {
	if !req.Op.Valid() {
		return Result{}, fmt.Errorf("%s: %w", req.Op, ErrUnknownOperation)
	}
	a, b, err := req.operands()
	if err != nil {
		return Result{}, opErrorf(req.Op, err)
	}

	return e.Dispatch(req.Op, a, b, req.Scalar)
}

func (e *Engine) run(op Operation, a, b matrix.Matrix, k float64) (Result, error) {
	switch op {
	case OpAdd:
		return matrixOf(matrix.Add(a, b))
	case OpSubtract:
		return matrixOf(matrix.Sub(a, b))
	case OpMultiply:
		return matrixOf(matrix.Mul(a, b))
	case OpScalar:
		return matrixOf(matrix.Scale(a, k))
	case OpTranspose:
		return matrixOf(matrix.Transpose(a))
	case OpDeterminant:
		d, err := matrix.Determinant(a)
		if err != nil {
			return Result{}, err
		}

		return scalarResult(d), nil
	case OpInverse:
		return matrixOf(matrix.Inverse(a, e.opts...))
	default:
		return Result{}, ErrUnknownOperation
	}
}

func matrixOf(m matrix.Matrix, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}

	return matrixResult(m)
}

// requireSquare reports the offending shape, e.g. "determinant requires a square matrix, got 2x3".
// The message already names the operation, so Dispatch returns it unprefixed.
func requireSquare(op Operation, m matrix.Matrix) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("%s requires a square matrix, got %dx%d: %w", op, m.Rows(), m.Cols(), matrix.ErrNonSquare)
	}

	return nil
}

func (e *Engine) checkSize(name string, m matrix.Matrix) error {
	if e.cfg.MaxDim == 0 {
		return nil
	}
	if m.Rows() > e.cfg.MaxDim || m.Cols() > e.cfg.MaxDim {
		return fmt.Errorf("operand %s is %dx%d, limit %d: %w", name, m.Rows(), m.Cols(), e.cfg.MaxDim, ErrTooLarge)
	}

	return nil
}
