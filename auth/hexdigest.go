// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package auth implements the session-authentication primitives Minecraft
// layers on top of the wire protocol's login sequence: the signed hex
// digest Mojang's Yggdrasil service expects for server-id hashes, and the
// SHA-1 input it is computed over.
package auth

import (
	"crypto/sha1"
	"strings"
)

// HexDigest renders digest — conventionally a SHA-1 hash — the way
// Minecraft's Yggdrasil session service expects: digest is read as a
// big-endian two's-complement signed integer, so a result with its
// highest bit set is negated and printed with a leading '-', and the
// magnitude is printed in lowercase hex with no leading zero digits
// (a zero magnitude prints as a single "0").
//
// This is not the hex encoding crypto libraries print by default — Go's
// math/big could reproduce it, but the two's-complement negate-with-carry
// below mirrors the reference client's own byte-level algorithm directly,
// one digit pass over the buffer rather than a big.Int round-trip.
func HexDigest(digest []byte) string {
	if len(digest) == 0 {
		return ""
	}

	negative := digest[0]&0x80 != 0
	b := digest
	if negative {
		b = negate(digest)
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}

	leading := true
	for _, by := range b {
		hi, lo := by>>4, by&0xf
		if leading && hi == 0 {
			// suppressed: a leading zero nibble before any digit has
			// been emitted yet
		} else {
			sb.WriteByte(hexDigit(hi))
			leading = false
		}
		if leading && lo == 0 {
			continue
		}
		sb.WriteByte(hexDigit(lo))
		leading = false
	}
	if leading {
		// every nibble was a suppressed leading zero: the magnitude is 0.
		sb.WriteByte('0')
	}
	return sb.String()
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + (n - 10)
}

// negate returns the big-endian two's-complement negation of b: bitwise
// NOT every byte, then add one, propagating the carry from the least
// significant byte up.
func negate(b []byte) []byte {
	out := make([]byte, len(b))
	carry := true
	for i := len(b) - 1; i >= 0; i-- {
		v := ^b[i]
		if carry {
			v++
			carry = v == 0
		}
		out[i] = v
	}
	return out
}

// ServerIDHash computes the session hash Minecraft's client and server
// exchange with the Yggdrasil "join"/"hasJoined" endpoints: SHA-1 over the
// (empty, historically server-supplied) server ID, the negotiated shared
// secret, and the server's DER-encoded public key, rendered with
// HexDigest.
func ServerIDHash(serverID string, sharedSecret, publicKey []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKey)
	return HexDigest(h.Sum(nil))
}
