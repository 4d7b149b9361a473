//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements a single-process simulation of Yao's
// garbled-circuit technique: each wire carries two opaque random
// labels standing for its 0 and 1 bits, each gate's truth table is
// encrypted and permuted at construction time, and evaluation
// recovers output labels by trial decryption without exposing the
// plaintext bits of intermediate wires.
package circuit

import (
	"fmt"
	"io"
	"sort"
)

// Circuit specifies a garbled boolean circuit: its wires, its gates
// in a valid evaluation order, and the designated output wires.
type Circuit struct {
	rnd     io.Reader
	wires   map[string]*Wire
	gates   []*Gate
	fullSum []*Wire
	result  []*Wire
	nextID  uint32
}

// newCircuit creates an empty circuit drawing labels and table
// permutations from rnd. Gate ids are scoped to the circuit, starting
// from zero.
func newCircuit(rnd io.Reader) *Circuit {
	return &Circuit{
		rnd:   rnd,
		wires: make(map[string]*Wire),
	}
}

// newWire creates a named wire and registers it in the circuit.
func (c *Circuit) newWire(name string) (*Wire, error) {
	if _, ok := c.wires[name]; ok {
		return nil, fmt.Errorf("duplicate wire %s", name)
	}
	wire, err := newWire(name, c.rnd)
	if err != nil {
		return nil, err
	}
	c.wires[name] = wire
	return wire, nil
}

// newInputWire creates a circuit input wire bound to a plaintext bit.
func (c *Circuit) newInputWire(name string, bit uint8) (*Wire, error) {
	wire, err := c.newWire(name)
	if err != nil {
		return nil, err
	}
	wire.SetValue(bit)
	return wire, nil
}

// addGate creates a gate computing op over the input wires into the
// output wire, garbles it, and appends it to the evaluation order.
func (c *Circuit) addGate(op Op, in0, in1, out *Wire) (*Gate, error) {
	gate, err := newGate(c.nextID, op, in0, in1, out, c.rnd)
	if err != nil {
		return nil, err
	}
	c.nextID++
	c.gates = append(c.gates, gate)
	return gate, nil
}

// Wire returns the named wire.
func (c *Circuit) Wire(name string) (*Wire, bool) {
	wire, ok := c.wires[name]
	return wire, ok
}

// Wires returns the circuit wires sorted by name.
func (c *Circuit) Wires() []*Wire {
	var wires []*Wire
	for _, w := range c.wires {
		wires = append(wires, w)
	}
	sort.Slice(wires, func(i, j int) bool {
		return wires[i].name < wires[j].name
	})
	return wires
}

// Gates returns the circuit gates in evaluation order.
func (c *Circuit) Gates() []*Gate {
	return c.gates
}

// FullSumWires returns the wires of the full 4-bit sum, LSB first.
func (c *Circuit) FullSumWires() []*Wire {
	return c.fullSum
}

// ResultWires returns the wires of the final result, LSB first. The
// result is the full sum shifted right by one bit.
func (c *Circuit) ResultWires() []*Wire {
	return c.result
}

func (c *Circuit) String() string {
	var stats [OR + 1]int
	for _, gate := range c.gates {
		stats[gate.op]++
	}
	var str string
	for op := XOR; op <= OR; op++ {
		if len(str) > 0 {
			str += " "
		}
		str += fmt.Sprintf("%s=%d", op, stats[op])
	}
	return fmt.Sprintf("#gates=%d (%s) #w=%d", len(c.gates), str,
		len(c.wires))
}
