//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"golang.org/x/crypto/chacha20"
)

// PRG expands a 32-byte seed into a deterministic ChaCha20
// keystream. It implements io.Reader so it can drive label generation
// and table shuffling in reproducible circuit constructions.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a PRG from the seed.
func NewPRG(seed [32]byte) *PRG {
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are correct by construction.
		panic(err)
	}
	return &PRG{
		cipher: cipher,
	}
}

// Read fills buf with keystream bytes. It never fails.
func (prg *PRG) Read(buf []byte) (int, error) {
	clear(buf)
	prg.cipher.XORKeyStream(buf, buf)
	return len(buf), nil
}
