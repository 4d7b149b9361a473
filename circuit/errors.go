//
// errors.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// InvalidInputLengthError is returned when a circuit operand does not
// have the expected number of bits. The operand is rejected before
// any wires or gates are created.
type InvalidInputLengthError struct {
	Name string
	Bits int
	Want int
}

func (e *InvalidInputLengthError) Error() string {
	return fmt.Sprintf("input %s: got %d bits, expected %d",
		e.Name, e.Bits, e.Want)
}

// GarbleMismatchError is returned when none of a gate's table entries
// decrypts to a valid output label. This violates the garbling
// invariant: either the caller supplied labels that are not a valid
// input pair for the gate, or the table is corrupted. The failure is
// not retryable.
type GarbleMismatchError struct {
	Gate uint32
	Op   Op
}

func (e *GarbleMismatchError) Error() string {
	return fmt.Sprintf(
		"gate %d (%s): no table entry decrypts to a valid output label",
		e.Gate, e.Op)
}

// MissingInputLabelError is returned when a gate is evaluated before
// one of its input wires has an evaluated label. This is a builder
// contract violation: the gate order was not topological.
type MissingInputLabelError struct {
	Gate uint32
	Wire string
}

func (e *MissingInputLabelError) Error() string {
	return fmt.Sprintf("gate %d: input wire %s has no evaluated label",
		e.Gate, e.Wire)
}

// LabelDecodeError is returned when an output wire's evaluated label
// matches neither entry of its label pair. This can only happen if a
// garbling mismatch upstream went unreported.
type LabelDecodeError struct {
	Wire  string
	Label Label
}

func (e *LabelDecodeError) Error() string {
	return fmt.Sprintf("wire %s: label %s matches neither wire label",
		e.Wire, e.Label)
}
