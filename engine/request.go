// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlmatrix/matrix"
	"gopkg.in/yaml.v3"
)

// Request is one form submission: an operation, up to two grids and a scalar.
// B is ignored by unary operations; Scalar is read only by OpScalar.
//
// YAML form:
//
//	op: multiply
//	a: [[1, 2], [3, 4]]
//	b: [[5], [6]]
type Request struct {
	Op     Operation   `yaml:"op"`
	A      [][]float64 `yaml:"a"`
	B      [][]float64 `yaml:"b,omitempty"`
	Scalar float64     `yaml:"scalar,omitempty"`
}

// NewRequest builds a Request from an operation tag.
func NewRequest(tag string, a, b [][]float64, k float64) (Request, error) {
	op, err := ParseOperation(tag)
	if err != nil {
		return Request{}, err
	}

	return Request{Op: op, A: a, B: b, Scalar: k}, nil
}

// DecodeRequest reads a single YAML request. Unknown keys are rejected.
func DecodeRequest(r io.Reader) (Request, error) {
	var req Request
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, fmt.Errorf("decode request: empty document: %w", ErrMissingOperand)
		}
		if errors.Is(err, ErrUnknownOperation) {
			return Request{}, fmt.Errorf("decode request: %w", err)
		}

		return Request{}, fmt.Errorf("decode request: %v", err)
	}

	return req, nil
}

// operands converts the request grids into matrices, honoring the operation arity.
func (r Request) operands() (a, b *matrix.Dense, err error) {
	if len(r.A) == 0 {
		return nil, nil, fmt.Errorf("operand a: %w", ErrMissingOperand)
	}
	if a, err = matrix.NewDenseFromRows(r.A); err != nil {
		return nil, nil, fmt.Errorf("operand a: %w", err)
	}
	if !r.Op.Binary() {
		return a, nil, nil
	}
	if len(r.B) == 0 {
		return nil, nil, fmt.Errorf("operand b: %w", ErrMissingOperand)
	}
	if b, err = matrix.NewDenseFromRows(r.B); err != nil {
		return nil, nil, fmt.Errorf("operand b: %w", err)
	}

	return a, b, nil
}
