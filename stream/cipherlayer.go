// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import "crypto/cipher"

// CipherLayer wraps a next layer and routes every Read/Write through a
// block-cipher stream initialized out-of-band by the caller (Minecraft
// runs AES-128/CFB8, key = shared secret, IV = shared secret, but this
// layer is agnostic to the concrete mode).
//
// Write path: the caller's plaintext is staged into a reused ciphertext
// scratch buffer, encrypted in place, then written to the next layer; the
// original plaintext byte count is reported to the caller, not the
// ciphertext count (they are always equal for a stream cipher, but this
// mirrors the contract precisely).
//
// Read path: a same-sized staging buffer receives ciphertext from the next
// layer; the first n staged bytes the next layer delivered are decrypted
// into the caller's destination, also when an error accompanies them.
type CipherLayer struct {
	next Layer
	enc  cipher.Stream
	dec  cipher.Stream

	// scratch is reused between calls so the layer never holds unbounded
	// memory across operations.
	scratch []byte
}

// NewCipherLayer wraps next, encrypting writes with enc and decrypting
// reads with dec.
func NewCipherLayer(next Layer, enc, dec cipher.Stream) *CipherLayer {
	return &CipherLayer{next: next, enc: enc, dec: dec}
}

// LowestLayer delegates to the wrapped layer.
func (c *CipherLayer) LowestLayer() any { return LowestLayer(c.next) }

func (c *CipherLayer) stage(n int) []byte {
	if cap(c.scratch) < n {
		c.scratch = make([]byte, n)
	}
	return c.scratch[:n]
}

// Write encrypts p into a scratch ciphertext buffer and writes the
// ciphertext to the next layer, reporting the plaintext byte count.
func (c *CipherLayer) Write(p []byte) (int, error) {
	ct := c.stage(len(p))
	c.enc.XORKeyStream(ct, p)
	n, err := c.next.Write(ct)
	if err != nil {
		// n ciphertext bytes landed on the wire; that many plaintext
		// bytes were consumed too, since the cipher is 1:1 byte-for-byte.
		return n, err
	}
	return len(p), nil
}

// Read reads ciphertext from the next layer into a same-sized scratch
// buffer, then decrypts the bytes actually read in place into p.
func (c *CipherLayer) Read(p []byte) (int, error) {
	ct := c.stage(len(p))
	n, err := c.next.Read(ct)
	if n > 0 {
		c.dec.XORKeyStream(p[:n], ct[:n])
	}
	return n, err
}
