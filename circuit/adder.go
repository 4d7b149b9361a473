//
// adder.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/markkurossi/yao/logger"
)

// AdderBits is the operand width of the garbled adder.
const AdderBits = 3

// NewAdder builds a garbled ripple-carry adder over two 3-bit
// operands, given LSB first. Labels and table permutations are drawn
// from crypto/rand.
func NewAdder(aBits, bBits []uint8) (*Circuit, error) {
	return NewAdderRand(rand.Reader, aBits, bBits)
}

// NewAdderRand builds the garbled adder drawing all randomness from
// rnd. A deterministic rnd gives a reproducible circuit.
func NewAdderRand(rnd io.Reader, aBits, bBits []uint8) (*Circuit, error) {
	if len(aBits) != AdderBits {
		return nil, &InvalidInputLengthError{
			Name: "a",
			Bits: len(aBits),
			Want: AdderBits,
		}
	}
	if len(bBits) != AdderBits {
		return nil, &InvalidInputLengthError{
			Name: "b",
			Bits: len(bBits),
			Want: AdderBits,
		}
	}

	c := newCircuit(rnd)

	a0, err := c.newInputWire("a0", aBits[0])
	if err != nil {
		return nil, err
	}
	a1, err := c.newInputWire("a1", aBits[1])
	if err != nil {
		return nil, err
	}
	a2, err := c.newInputWire("a2", aBits[2])
	if err != nil {
		return nil, err
	}
	b0, err := c.newInputWire("b0", bBits[0])
	if err != nil {
		return nil, err
	}
	b1, err := c.newInputWire("b1", bBits[1])
	if err != nil {
		return nil, err
	}
	b2, err := c.newInputWire("b2", bBits[2])
	if err != nil {
		return nil, err
	}

	// Bit 0 is a half adder: sum0 = a0 XOR b0, carry0 = a0 AND b0.
	sum0, carry0, err := c.halfAdder(a0, b0, "sum0", "carry0")
	if err != nil {
		return nil, err
	}

	// Bits 1 and 2 are full-adder stages chaining the carry.
	sum1, carry1, err := c.fullAdder(a1, b1, carry0, 1)
	if err != nil {
		return nil, err
	}
	sum2, carry2, err := c.fullAdder(a2, b2, carry1, 2)
	if err != nil {
		return nil, err
	}

	c.fullSum = []*Wire{sum0, sum1, sum2, carry2}
	// The final result is defined as the full sum divided by two,
	// i.e. shifted right by one bit, dropping sum0.
	c.result = []*Wire{sum1, sum2, carry2}

	log := logger.Logger()
	log.Debug().
		Str("circuit", c.String()).
		Msg("garbled adder built")

	return c, nil
}

// halfAdder adds the first operand bits: one XOR for the sum, one AND
// for the carry.
func (c *Circuit) halfAdder(a, b *Wire, sumName, carryName string) (
	sum, carry *Wire, err error) {

	sum, err = c.newWire(sumName)
	if err != nil {
		return nil, nil, err
	}
	if _, err = c.addGate(XOR, a, b, sum); err != nil {
		return nil, nil, err
	}
	carry, err = c.newWire(carryName)
	if err != nil {
		return nil, nil, err
	}
	if _, err = c.addGate(AND, a, b, carry); err != nil {
		return nil, nil, err
	}
	return sum, carry, nil
}

// fullAdder adds one operand bit pair plus the carry from the
// previous stage: two XORs for the sum, two ANDs and an OR for the
// carry out.
func (c *Circuit) fullAdder(a, b, carryIn *Wire, bit int) (
	sum, carryOut *Wire, err error) {

	names := stageNames(bit)

	temp, err := c.newWire(names.temp)
	if err != nil {
		return nil, nil, err
	}
	if _, err = c.addGate(XOR, a, b, temp); err != nil {
		return nil, nil, err
	}

	sum, err = c.newWire(names.sum)
	if err != nil {
		return nil, nil, err
	}
	if _, err = c.addGate(XOR, temp, carryIn, sum); err != nil {
		return nil, nil, err
	}

	andAB, err := c.newWire(names.andAB)
	if err != nil {
		return nil, nil, err
	}
	if _, err = c.addGate(AND, a, b, andAB); err != nil {
		return nil, nil, err
	}

	andTC, err := c.newWire(names.andTC)
	if err != nil {
		return nil, nil, err
	}
	if _, err = c.addGate(AND, temp, carryIn, andTC); err != nil {
		return nil, nil, err
	}

	carryOut, err = c.newWire(names.carry)
	if err != nil {
		return nil, nil, err
	}
	if _, err = c.addGate(OR, andAB, andTC, carryOut); err != nil {
		return nil, nil, err
	}

	return sum, carryOut, nil
}

type wireNames struct {
	temp  string
	sum   string
	andAB string
	andTC string
	carry string
}

// stageNames names the wires of one full-adder stage following the
// numbering of the whole adder: stage 1 uses and1/and2, stage 2 uses
// and3/and4.
func stageNames(bit int) wireNames {
	base := (bit - 1) * 2
	return wireNames{
		temp:  fmt.Sprintf("temp%d", bit),
		sum:   fmt.Sprintf("sum%d", bit),
		andAB: fmt.Sprintf("and%d", base+1),
		andTC: fmt.Sprintf("and%d", base+2),
		carry: fmt.Sprintf("carry%d", bit),
	}
}
