//
// gate.go
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
	"math/big"

	"github.com/markkurossi/text/superscript"
)

// Op specifies gate function.
type Op byte

// Gate functions.
const (
	XOR Op = iota
	AND
	OR
)

func (op Op) String() string {
	switch op {
	case XOR:
		return "XOR"
	case AND:
		return "AND"
	case OR:
		return "OR"
	default:
		return fmt.Sprintf("{Op %d}", op)
	}
}

// Eval computes the gate function on plaintext bits.
func (op Op) Eval(a, b uint8) uint8 {
	switch op {
	case XOR:
		return a ^ b
	case AND:
		return a & b
	case OR:
		return a | b
	default:
		panic(fmt.Sprintf("unsupported gate type %s", op))
	}
}

// Gate implements a two-input boolean gate with a garbled truth
// table. The table holds the output-wire labels for all four input
// combinations, each encrypted under the matching pair of input-wire
// labels and stored in a random order. The table is built once at
// construction and never mutated; evaluation only sets the output
// wire's evaluated label.
type Gate struct {
	id    uint32
	op    Op
	in0   *Wire
	in1   *Wire
	out   *Wire
	table [4]Label
}

// newGate wires the gate and garbles its truth table with randomness
// from rnd.
func newGate(id uint32, op Op, in0, in1, out *Wire, rnd io.Reader) (
	*Gate, error) {

	gate := &Gate{
		id:  id,
		op:  op,
		in0: in0,
		in1: in1,
		out: out,
	}

	var idx int
	for a := uint8(0); a < 2; a++ {
		for b := uint8(0); b < 2; b++ {
			ka := in0.Label(a)
			kb := in1.Label(b)
			oc := out.Label(op.Eval(a, b))
			gate.table[idx] = encrypt(ka, kb, id, oc)
			idx++
		}
	}
	// The combination tags are dropped and the entries shuffled so
	// the stored slot order carries no information about the
	// plaintext input combinations.
	if err := shuffle(gate.table[:], rnd); err != nil {
		return nil, err
	}
	return gate, nil
}

// shuffle permutes the table entries with a Fisher-Yates walk driven
// by rnd.
func shuffle(table []Label, rnd io.Reader) error {
	for i := len(table) - 1; i > 0; i-- {
		j, err := rand.Int(rnd, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		k := int(j.Int64())
		table[i], table[k] = table[k], table[i]
	}
	return nil
}

// Evaluate trial-decrypts the garbled table with the two input
// labels. Exactly one entry decrypts to a label of the output wire;
// that label is recorded on the output wire and returned. If no entry
// decrypts to a valid output label, the input labels were not a valid
// pair for this gate or the table is corrupted, and the evaluation
// fails with GarbleMismatchError.
func (g *Gate) Evaluate(la, lb Label) (Label, error) {
	l0, l1 := g.out.Labels()
	for _, ciphertext := range g.table {
		candidate := decrypt(la, lb, g.id, ciphertext)
		if candidate.Equal(l0) || candidate.Equal(l1) {
			g.out.setEvaluated(candidate)
			return candidate, nil
		}
	}
	return 0, &GarbleMismatchError{
		Gate: g.id,
		Op:   g.op,
	}
}

// ID returns the gate id.
func (g *Gate) ID() uint32 {
	return g.id
}

// Op returns the gate function.
func (g *Gate) Op() Op {
	return g.op
}

// Inputs returns the gate input wires.
func (g *Gate) Inputs() (in0, in1 *Wire) {
	return g.in0, g.in1
}

// Output returns the gate output wire.
func (g *Gate) Output() *Wire {
	return g.out
}

// Table returns the gate's garbled truth table in its stored order.
func (g *Gate) Table() []Label {
	return g.table[:]
}

func (g *Gate) String() string {
	return fmt.Sprintf("g%s %s(%s, %s) %s",
		superscript.Itoa(int(g.id)), g.op, g.in0.name, g.in1.name,
		g.out.name)
}
