//
// wire.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Wire implements a circuit wire with labels for the 0 and 1 bits.
// The label pair is fixed for the wire's lifetime. A wire holds a
// plaintext value only if it is a circuit input; derived wires receive
// their evaluated label from the gate that computes them.
type Wire struct {
	name     string
	labels   [2]Label
	value    uint8
	hasValue bool
	eval     Label
	hasEval  bool
}

// newWire creates a wire with two distinct random labels from rnd.
func newWire(name string, rnd io.Reader) (*Wire, error) {
	l0, err := NewLabel(rnd)
	if err != nil {
		return nil, err
	}
	l1, err := NewLabel(rnd)
	if err != nil {
		return nil, err
	}
	// Equal labels would make decoding ambiguous. Resample.
	for l1.Equal(l0) {
		l1, err = NewLabel(rnd)
		if err != nil {
			return nil, err
		}
	}
	return &Wire{
		name:   name,
		labels: [2]Label{l0, l1},
	}, nil
}

// Name returns the wire name.
func (w *Wire) Name() string {
	return w.name
}

// Label returns the label standing for the bit.
func (w *Wire) Label(bit uint8) Label {
	return w.labels[bit&1]
}

// Labels returns the wire's label pair.
func (w *Wire) Labels() (l0, l1 Label) {
	return w.labels[0], w.labels[1]
}

// SetValue assigns the plaintext bit of a circuit input wire. The
// wire's evaluated label becomes the label standing for the bit.
func (w *Wire) SetValue(bit uint8) {
	w.value = bit & 1
	w.hasValue = true
	w.eval = w.labels[w.value]
	w.hasEval = true
}

// Value returns the wire's plaintext bit, if known.
func (w *Wire) Value() (uint8, bool) {
	return w.value, w.hasValue
}

// Evaluated returns the label the wire holds after evaluation.
func (w *Wire) Evaluated() (Label, bool) {
	return w.eval, w.hasEval
}

// setEvaluated records the label produced by the gate driving this
// wire.
func (w *Wire) setEvaluated(label Label) {
	w.eval = label
	w.hasEval = true
}

// Bit resolves a concrete label back into a bit value.
func (w *Wire) Bit(label Label) (uint8, error) {
	switch {
	case label.Equal(w.labels[0]):
		return 0, nil

	case label.Equal(w.labels[1]):
		return 1, nil

	default:
		return 0, &LabelDecodeError{
			Wire:  w.name,
			Label: label,
		}
	}
}

func (w *Wire) String() string {
	if w.hasValue {
		return fmt.Sprintf("%s=%d", w.name, w.value)
	}
	return w.name
}
