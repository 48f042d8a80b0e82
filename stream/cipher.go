// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import "crypto/cipher"

// CFB8 is Minecraft's post-handshake traffic cipher: AES-128 run in 8-bit
// (byte-at-a-time) CFB feedback, key = shared secret, IV = shared secret.
//
// Neither crypto/cipher nor golang.org/x/crypto expose 8-bit CFB —
// crypto/cipher's NewCFBEncrypter/Decrypter operate a full block at a time
// per feedback step. This is a from-scratch implementation of the narrower
// byte-at-a-time feedback register Minecraft actually uses, built directly
// on cipher.Block per the structural shape of an EVP cipher context: an
// opaque object offering "encrypt/decrypt this block" and nothing else.
type cfb8 struct {
	block   cipher.Block
	shift   []byte // feedback register, len == block.BlockSize()
	tmp     []byte // scratch for the block cipher's keystream byte
	decrypt bool
}

// NewCFB8Encryptor returns a cipher.Stream that encrypts using CFB8 mode.
func NewCFB8Encryptor(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(block, iv, false)
}

// NewCFB8Decryptor returns a cipher.Stream that decrypts using CFB8 mode.
func NewCFB8Decryptor(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(block, iv, true)
}

func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8 {
	bs := block.BlockSize()
	if len(iv) != bs {
		panic("stream: CFB8 IV length must equal the block size")
	}
	shift := make([]byte, bs)
	copy(shift, iv)
	return &cfb8{block: block, shift: shift, tmp: make([]byte, bs), decrypt: decrypt}
}

// XORKeyStream implements cipher.Stream, processing one byte of feedback
// register at a time: encrypt the register, XOR its first byte against the
// plaintext/ciphertext byte, then shift the register left and append the
// byte that was actually transmitted on the wire (ciphertext, in both
// encrypt and decrypt directions).
func (c *cfb8) XORKeyStream(dst, src []byte) {
	bs := len(c.shift)
	for i := range src {
		c.block.Encrypt(c.tmp, c.shift)
		var wire byte
		if c.decrypt {
			wire = src[i]
			dst[i] = src[i] ^ c.tmp[0]
		} else {
			dst[i] = src[i] ^ c.tmp[0]
			wire = dst[i]
		}
		copy(c.shift, c.shift[1:bs])
		c.shift[bs-1] = wire
	}
}
