//
// render.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Tabulate prints a diagnostics report of the circuit: the wire label
// pairs and the garbled gate tables.
func (c *Circuit) Tabulate(out io.Writer) {
	c.TabulateWires(out)
	c.TabulateGates(out)
}

// TabulateWires prints the circuit wires with their label pairs and,
// for input wires, their plaintext values.
func (c *Circuit) TabulateWires(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Wire").SetAlign(tabulate.ML)
	tab.Header("Label 0").SetAlign(tabulate.MR)
	tab.Header("Label 1").SetAlign(tabulate.MR)
	tab.Header("Value").SetAlign(tabulate.MR)

	for _, wire := range c.Wires() {
		row := tab.Row()
		row.Column(wire.name)

		l0, l1 := wire.Labels()
		row.Column(l0.String())
		row.Column(l1.String())

		if value, ok := wire.Value(); ok {
			row.Column(fmt.Sprintf("%d", value))
		} else {
			row.Column("")
		}
	}
	tab.Print(out)
}

// TabulateGates prints the gates in evaluation order with their
// garbled tables. The table entries appear in their stored, permuted
// order.
func (c *Circuit) TabulateGates(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Gate").SetAlign(tabulate.MR)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Inputs").SetAlign(tabulate.ML)
	tab.Header("Output").SetAlign(tabulate.ML)

	for _, gate := range c.gates {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", gate.id))
		row.Column(gate.op.String())
		row.Column(fmt.Sprintf("%s, %s", gate.in0.name, gate.in1.name))
		row.Column(gate.out.name)

		for idx, ciphertext := range gate.table {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(gate.table) {
				prefix = "╰╴"
			} else {
				prefix = "├╴"
			}
			row.Column("")
			row.Column("")
			row.Column(prefix + ciphertext.String()).
				SetFormat(tabulate.FmtItalic)
			row.Column("")
		}
	}
	tab.Print(out)
}
