// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation selects one of the fixed matrix operations.
// The zero value is OpUnknown and is rejected by the dispatcher.
type Operation uint8

// The fixed operation set, in selector order.
const (
	OpUnknown Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpScalar
	OpTranspose
	OpDeterminant
	OpInverse
)

// opTags maps each Operation to its wire tag.
var opTags = [...]string{
	OpUnknown:     "unknown",
	OpAdd:         "add",
	OpSubtract:    "subtract",
	OpMultiply:    "multiply",
	OpScalar:      "scalar",
	OpTranspose:   "transpose",
	OpDeterminant: "determinant",
	OpInverse:     "inverse",
}

// Operations returns every valid Operation in selector order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpScalar, OpTranspose, OpDeterminant, OpInverse}
}

// String returns the operation tag ("add", "inverse", ...).
func (op Operation) String() string {
	if int(op) < len(opTags) {
		return opTags[op]
	}

	return fmt.Sprintf("Operation(%d)", uint8(op))
}

// Valid reports whether op is one of the seven operations.
func (op Operation) Valid() bool { return op > OpUnknown && int(op) < len(opTags) }

// Binary reports whether op consumes a second matrix operand.
func (op Operation) Binary() bool {
	return op == OpAdd || op == OpSubtract || op == OpMultiply
}

// ParseOperation resolves a tag, ignoring case and surrounding spaces.
func ParseOperation(tag string) (Operation, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	for _, op := range Operations() {
		if opTags[op] == t {
			return op, nil
		}
	}

	return OpUnknown, fmt.Errorf("%q: %w", tag, ErrUnknownOperation)
}

// MarshalYAML encodes the operation as its tag.
func (op Operation) MarshalYAML() (interface{}, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownOperation)
	}

	return op.String(), nil
}

// UnmarshalYAML decodes a scalar tag into an Operation.
func (op *Operation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operation must be a scalar tag: %w", value.Line, ErrUnknownOperation)
	}
	parsed, err := ParseOperation(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*op = parsed

	return nil
}
