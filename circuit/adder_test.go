//
// adder_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"crypto/rand"
	"errors"
	"reflect"
	"testing"
)

func TestAdderExhaustive(t *testing.T) {
	for a := uint64(0); a < 8; a++ {
		for b := uint64(0); b < 8; b++ {
			circ, err := NewAdder(Bits(a, 3), Bits(b, 3))
			if err != nil {
				t.Fatalf("NewAdder(%d, %d): %s", a, b, err)
			}
			fullSum, result, err := circ.Evaluate()
			if err != nil {
				t.Fatalf("%d+%d: %s", a, b, err)
			}
			if len(fullSum) != 4 || Uint(fullSum) != a+b {
				t.Errorf("%d+%d: sum=%v, expected %d",
					a, b, fullSum, a+b)
			}
			if len(result) != 3 || Uint(result) != (a+b)>>1 {
				t.Errorf("%d+%d: result=%v, expected %d",
					a, b, result, (a+b)>>1)
			}
		}
	}
}

func TestAdderExamples(t *testing.T) {
	tests := []struct {
		a       []uint8
		b       []uint8
		fullSum []uint8
		result  []uint8
	}{
		{
			a:       []uint8{1, 0, 1},
			b:       []uint8{1, 0, 0},
			fullSum: []uint8{0, 1, 1, 0},
			result:  []uint8{1, 1, 0},
		},
		{
			a:       []uint8{1, 1, 1},
			b:       []uint8{1, 1, 1},
			fullSum: []uint8{0, 1, 1, 1},
			result:  []uint8{1, 1, 1},
		},
		{
			a:       []uint8{0, 0, 0},
			b:       []uint8{0, 0, 0},
			fullSum: []uint8{0, 0, 0, 0},
			result:  []uint8{0, 0, 0},
		},
	}
	for idx, test := range tests {
		circ, err := NewAdder(test.a, test.b)
		if err != nil {
			t.Fatalf("test %d: %s", idx, err)
		}
		fullSum, result, err := circ.Evaluate()
		if err != nil {
			t.Fatalf("test %d: %s", idx, err)
		}
		if !reflect.DeepEqual(fullSum, test.fullSum) {
			t.Errorf("test %d: sum=%v, expected %v",
				idx, fullSum, test.fullSum)
		}
		if !reflect.DeepEqual(result, test.result) {
			t.Errorf("test %d: result=%v, expected %v",
				idx, result, test.result)
		}
	}
}

func TestAdderInvalidInputLength(t *testing.T) {
	good := []uint8{1, 0, 1}

	for _, bad := range [][]uint8{nil, {1}, {1, 0}, {1, 0, 1, 0}} {
		_, err := NewAdder(bad, good)
		var lenErr *InvalidInputLengthError
		if !errors.As(err, &lenErr) {
			t.Fatalf("a=%v: expected InvalidInputLengthError, got %v",
				bad, err)
		}
		if lenErr.Name != "a" || lenErr.Bits != len(bad) {
			t.Errorf("a=%v: error names wrong input: %s", bad, lenErr)
		}

		_, err = NewAdder(good, bad)
		if !errors.As(err, &lenErr) {
			t.Fatalf("b=%v: expected InvalidInputLengthError, got %v",
				bad, err)
		}
		if lenErr.Name != "b" {
			t.Errorf("b=%v: error names wrong input: %s", bad, lenErr)
		}
	}
}

func TestAdderTopology(t *testing.T) {
	circ, err := NewAdder(Bits(3, 3), Bits(4, 3))
	if err != nil {
		t.Fatalf("NewAdder: %s", err)
	}

	gates := circ.Gates()
	if len(gates) != 12 {
		t.Fatalf("got %d gates, expected 12", len(gates))
	}
	var stats [OR + 1]int
	for idx, gate := range gates {
		if gate.ID() != uint32(idx) {
			t.Errorf("gate %d has id %d", idx, gate.ID())
		}
		stats[gate.Op()]++
	}
	if stats[XOR] != 5 || stats[AND] != 5 || stats[OR] != 2 {
		t.Errorf("gate mix XOR=%d AND=%d OR=%d, expected 5/5/2",
			stats[XOR], stats[AND], stats[OR])
	}

	var names []string
	for _, wire := range circ.FullSumWires() {
		names = append(names, wire.Name())
	}
	expected := []string{"sum0", "sum1", "sum2", "carry2"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("full sum wires %v, expected %v", names, expected)
	}

	names = nil
	for _, wire := range circ.ResultWires() {
		names = append(names, wire.Name())
	}
	expected = []string{"sum1", "sum2", "carry2"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("result wires %v, expected %v", names, expected)
	}
}

func TestAdderLabelUniqueness(t *testing.T) {
	for round := 0; round < 10; round++ {
		circ, err := NewAdder(Bits(uint64(round)%8, 3), Bits(7, 3))
		if err != nil {
			t.Fatalf("NewAdder: %s", err)
		}
		for _, wire := range circ.Wires() {
			l0, l1 := wire.Labels()
			if l0.Equal(l1) {
				t.Fatalf("wire %s: label pair collides", wire.Name())
			}
		}
	}
}

func TestAdderDeterministic(t *testing.T) {
	seed := [32]byte{42}

	c0, err := NewAdderRand(NewPRG(seed), Bits(5, 3), Bits(1, 3))
	if err != nil {
		t.Fatalf("NewAdderRand: %s", err)
	}
	c1, err := NewAdderRand(NewPRG(seed), Bits(5, 3), Bits(1, 3))
	if err != nil {
		t.Fatalf("NewAdderRand: %s", err)
	}

	for _, w0 := range c0.Wires() {
		w1, ok := c1.Wire(w0.Name())
		if !ok {
			t.Fatalf("wire %s missing", w0.Name())
		}
		a0, a1 := w0.Labels()
		b0, b1 := w1.Labels()
		if !a0.Equal(b0) || !a1.Equal(b1) {
			t.Fatalf("wire %s: labels differ between seeded builds",
				w0.Name())
		}
	}
	for idx, g0 := range c0.Gates() {
		g1 := c1.Gates()[idx]
		if !reflect.DeepEqual(g0.Table(), g1.Table()) {
			t.Fatalf("gate %d: tables differ between seeded builds",
				g0.ID())
		}
	}
}

func TestEvaluateMissingInputLabel(t *testing.T) {
	c := newCircuit(rand.Reader)

	// Input wires without plaintext values carry no evaluated labels.
	in0, err := c.newWire("x")
	if err != nil {
		t.Fatalf("newWire: %s", err)
	}
	in1, err := c.newWire("y")
	if err != nil {
		t.Fatalf("newWire: %s", err)
	}
	out, err := c.newWire("z")
	if err != nil {
		t.Fatalf("newWire: %s", err)
	}
	if _, err := c.addGate(AND, in0, in1, out); err != nil {
		t.Fatalf("addGate: %s", err)
	}

	_, _, err = c.Evaluate()
	var missing *MissingInputLabelError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingInputLabelError, got %v", err)
	}
	if missing.Gate != 0 || missing.Wire != "x" {
		t.Errorf("error names wrong gate or wire: %s", missing)
	}
}

func TestDecodeFailure(t *testing.T) {
	wire := &Wire{
		name:   "w",
		labels: [2]Label{1, 2},
	}

	// Unevaluated output wire.
	_, err := decode([]*Wire{wire})
	var decodeErr *LabelDecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected LabelDecodeError, got %v", err)
	}

	// Evaluated label outside the wire's pair.
	wire.setEvaluated(Label(3))
	_, err = decode([]*Wire{wire})
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected LabelDecodeError, got %v", err)
	}
	if decodeErr.Wire != "w" || !decodeErr.Label.Equal(3) {
		t.Errorf("error names wrong wire or label: %s", decodeErr)
	}
}
