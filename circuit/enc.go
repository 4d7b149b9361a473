//
// enc.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// pad derives the encryption pad for one garbled table entry. The two
// input labels and the gate id are hashed in a fixed-width encoding so
// that distinct (ka, kb, gate) tuples never share a preimage. The pad
// is taken from the leading bytes of the digest and is as wide as a
// label.
func pad(ka, kb Label, gate uint32) Label {
	var buf [20]byte
	binary.BigEndian.PutUint64(buf[0:], uint64(ka))
	binary.BigEndian.PutUint64(buf[8:], uint64(kb))
	binary.BigEndian.PutUint32(buf[16:], gate)

	digest := sha3.Sum256(buf[:])
	return Label(binary.BigEndian.Uint64(digest[:8]))
}

// encrypt encrypts the output label under the two input labels and
// the gate id.
func encrypt(ka, kb Label, gate uint32, out Label) Label {
	return out.Xor(pad(ka, kb, gate))
}

// decrypt decrypts a garbled table entry. XOR with the pad is its own
// inverse so this is the mirror of encrypt.
func decrypt(ka, kb Label, gate uint32, data Label) Label {
	return data.Xor(pad(ka, kb, gate))
}
