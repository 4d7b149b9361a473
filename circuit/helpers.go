//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

// Bits converts a value into an LSB-first bit vector of n bits.
func Bits(value uint64, n int) []uint8 {
	bits := make([]uint8, n)
	for i := 0; i < n; i++ {
		bits[i] = uint8(value >> i & 1)
	}
	return bits
}

// Uint converts an LSB-first bit vector into an integer value.
func Uint(bits []uint8) uint64 {
	var value uint64
	for i, bit := range bits {
		value |= uint64(bit&1) << i
	}
	return value
}
