//
// label.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Label implements a 64 bit wire label. A label is an opaque random
// value standing for a wire's bit; it reveals the bit only through a
// successful decode against the wire's label pair.
type Label uint64

// NewLabel creates a new random label from rnd.
func NewLabel(rnd io.Reader) (Label, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rnd, buf[:]); err != nil {
		return 0, err
	}
	return Label(binary.BigEndian.Uint64(buf[:])), nil
}

// Equal tests if the labels are equal.
func (l Label) Equal(o Label) bool {
	return l == o
}

// Xor XORs the label with o.
func (l Label) Xor(o Label) Label {
	return l ^ o
}

func (l Label) String() string {
	return fmt.Sprintf("%016x", uint64(l))
}
