//
// eval.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

// Evaluate evaluates the gates in the builder-supplied order and
// decodes the designated output wires back into plaintext bits. The
// gate order is trusted to be topological: a gate whose input wires
// lack evaluated labels aborts the evaluation with
// MissingInputLabelError instead of proceeding with a damaged state.
func (c *Circuit) Evaluate() (fullSum, result []uint8, err error) {
	for _, gate := range c.gates {
		la, ok := gate.in0.Evaluated()
		if !ok {
			return nil, nil, &MissingInputLabelError{
				Gate: gate.id,
				Wire: gate.in0.name,
			}
		}
		lb, ok := gate.in1.Evaluated()
		if !ok {
			return nil, nil, &MissingInputLabelError{
				Gate: gate.id,
				Wire: gate.in1.name,
			}
		}
		if _, err := gate.Evaluate(la, lb); err != nil {
			return nil, nil, err
		}
	}

	fullSum, err = decode(c.fullSum)
	if err != nil {
		return nil, nil, err
	}
	result, err = decode(c.result)
	if err != nil {
		return nil, nil, err
	}
	return fullSum, result, nil
}

// decode converts the evaluated labels of the wires back into
// plaintext bits by reverse lookup against each wire's label pair.
func decode(wires []*Wire) ([]uint8, error) {
	bits := make([]uint8, len(wires))
	for idx, w := range wires {
		label, ok := w.Evaluated()
		if !ok {
			return nil, &LabelDecodeError{
				Wire: w.name,
			}
		}
		bit, err := w.Bit(label)
		if err != nil {
			return nil, err
		}
		bits[idx] = bit
	}
	return bits, nil
}
