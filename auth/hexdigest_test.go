// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package auth

import (
	"crypto/sha1"
	"testing"
)

// These are the canonical test vectors Minecraft's own wire protocol
// documentation gives for the signed hex-digest algorithm.
func TestHexDigest_KnownVectors(t *testing.T) {
	cases := map[string]string{
		"Notch": "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48",
		"jeb_":  "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1",
		"simon": "88e16a1019277b15d58faf0541e11910eb756f6",
	}
	for input, want := range cases {
		sum := sha1.Sum([]byte(input))
		got := HexDigest(sum[:])
		if got != want {
			t.Fatalf("HexDigest(sha1(%q)) = %q, want %q", input, got, want)
		}
	}
}

func TestHexDigest_AllZero(t *testing.T) {
	if got := HexDigest(make([]byte, 20)); got != "0" {
		t.Fatalf("HexDigest(zero) = %q, want %q", got, "0")
	}
}

func TestHexDigest_Empty(t *testing.T) {
	if got := HexDigest(nil); got != "" {
		t.Fatalf("HexDigest(nil) = %q, want empty string", got)
	}
}

func TestHexDigest_PositiveHasNoSign(t *testing.T) {
	// top bit clear: positive
	got := HexDigest([]byte{0x01, 0x02})
	if got[0] == '-' {
		t.Fatalf("HexDigest(%v) = %q, want no leading '-'", []byte{0x01, 0x02}, got)
	}
	if got != "102" {
		t.Fatalf("got %q, want %q", got, "102")
	}
}

func TestHexDigest_NegativeHasSign(t *testing.T) {
	// top bit set: negative. 0xff,0xff negated (two's complement) is 0x00,0x01.
	got := HexDigest([]byte{0xff, 0xff})
	if got != "-1" {
		t.Fatalf("got %q, want %q", got, "-1")
	}
}

func TestHexDigest_MultiByteCarry(t *testing.T) {
	// the spec's own literal vector: negation must carry across byte
	// boundaries, not just negate the low byte.
	got := HexDigest([]byte{0xff, 0xff, 0x00})
	if got != "-100" {
		t.Fatalf("got %q, want %q", got, "-100")
	}
}

func TestServerIDHash_DeterministicAndSensitiveToInputs(t *testing.T) {
	secret := []byte("shared-secret-bytes")
	pub := []byte("der-encoded-public-key")

	a := ServerIDHash("", secret, pub)
	b := ServerIDHash("", secret, pub)
	if a != b {
		t.Fatalf("ServerIDHash must be deterministic: %q != %q", a, b)
	}

	c := ServerIDHash("", append([]byte{0}, secret...), pub)
	if a == c {
		t.Fatalf("ServerIDHash must be sensitive to its inputs")
	}
}
