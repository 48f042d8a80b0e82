// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varint

import (
	"bytes"
	"errors"
	"testing"
)

func encodeBytes(t *testing.T, v uint64) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := Encode(v, &buf); err != nil {
		t.Fatalf("Encode(%d): %v", v, err)
	}
	return buf.Bytes()
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 2, 127, 128, 255, 25565, 2097151, 1 << 31, 1<<64 - 1}
	for _, v := range cases {
		b := encodeBytes(t, v)
		got, n, err := Decode(bytes.NewReader(b), Width64)
		if err != nil {
			t.Fatalf("Decode(%d): %v", v, err)
		}
		if got != v || n != len(b) {
			t.Fatalf("Decode(%d) = (%d, %d), want (%d, %d)", v, got, n, v, len(b))
		}
	}
}

func TestEncode_KnownVectors(t *testing.T) {
	cases := map[uint64][]byte{
		0:     {0x00},
		1:     {0x01},
		127:   {0x7f},
		128:   {0x80, 0x01},
		255:   {0xff, 0x01},
		25565: {0xdd, 0xc7, 0x01},
	}
	for v, want := range cases {
		got := encodeBytes(t, v)
		if !bytes.Equal(got, want) {
			t.Fatalf("Encode(%d) = % x, want % x", v, got, want)
		}
	}
}

func TestEncode_SpecLiteralVectors(t *testing.T) {
	if got := encodeBytes(t, 300); !bytes.Equal(got, []byte{0xAC, 0x02}) {
		t.Fatalf("Encode(300) = % x, want % x", got, []byte{0xAC, 0x02})
	}
	// -1 stored as a two's-complement i32 payload occupies the full 5 bytes.
	var i32 int32 = -1
	neg1 := uint64(uint32(i32))
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}
	if got := encodeBytes(t, neg1); !bytes.Equal(got, want) {
		t.Fatalf("Encode(-1 as i32) = % x, want % x", got, want)
	}
}

func TestDecode_EOF(t *testing.T) {
	_, _, err := Decode(bytes.NewReader(nil), Width32)
	if !errors.Is(err, ErrEOF) {
		t.Fatalf("got %v, want ErrEOF", err)
	}
}

func TestDecode_TruncatedContinuation(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte{0x80}), Width32)
	if !errors.Is(err, ErrEOF) {
		t.Fatalf("got %v, want ErrEOF", err)
	}
}

func TestDecode_Max(t *testing.T) {
	b := bytes.Repeat([]byte{0x80}, MaxSize(Width32)+1)
	_, _, err := Decode(bytes.NewReader(b), Width32)
	if !errors.Is(err, ErrMax) {
		t.Fatalf("got %v, want ErrMax", err)
	}
}

func TestDecode_Overflow(t *testing.T) {
	// Width16's 3rd byte may only contribute 2 more payload bits; set bit 2
	// of that byte so the shifted value overflows 16 bits.
	b := []byte{0xff, 0xff, 0x07}
	_, _, err := Decode(bytes.NewReader(b), Width16)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("got %v, want ErrOverflow", err)
	}
}

func TestDecode_Overlong(t *testing.T) {
	b := []byte{0x80, 0x00}
	_, _, err := Decode(bytes.NewReader(b), Width32)
	if !errors.Is(err, ErrOverlong) {
		t.Fatalf("got %v, want ErrOverlong", err)
	}
}

func TestDecode_SingleZeroByteIsValid(t *testing.T) {
	v, n, err := Decode(bytes.NewReader([]byte{0x00}), Width32)
	if err != nil || v != 0 || n != 1 {
		t.Fatalf("got (%d, %d, %v), want (0, 1, nil)", v, n, err)
	}
}

func TestZigZag_RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, 2147483647, -2147483648}
	for _, v := range cases {
		var buf bytes.Buffer
		if _, err := EncodeZigZag(v, Width32, &buf); err != nil {
			t.Fatalf("EncodeZigZag(%d): %v", v, err)
		}
		got, _, err := DecodeZigZag(bytes.NewReader(buf.Bytes()), Width32)
		if err != nil {
			t.Fatalf("DecodeZigZag(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d -> %d", v, got)
		}
	}
}

func TestZigZag_KnownMapping(t *testing.T) {
	// ZigZag maps 0,-1,1,-2,2,... to 0,1,2,3,4,...
	cases := map[int64]uint64{0: 0, -1: 1, 1: 2, -2: 3, 2: 4}
	for v, want := range cases {
		var buf bytes.Buffer
		if _, err := EncodeZigZag(v, Width32, &buf); err != nil {
			t.Fatalf("EncodeZigZag(%d): %v", v, err)
		}
		got, _, err := Decode(bytes.NewReader(buf.Bytes()), Width32)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != want {
			t.Fatalf("zigzag(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestSize_MatchesEncodedLength(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 1 << 20, 1<<64 - 1}
	for _, v := range cases {
		b := encodeBytes(t, v)
		if Size(v) != len(b) {
			t.Fatalf("Size(%d) = %d, want %d", v, Size(v), len(b))
		}
	}
}

func TestMaxSize(t *testing.T) {
	if MaxSize(Width16) != 3 {
		t.Fatalf("MaxSize(16) = %d, want 3", MaxSize(Width16))
	}
	if MaxSize(Width32) != 5 {
		t.Fatalf("MaxSize(32) = %d, want 5", MaxSize(Width32))
	}
	if MaxSize(Width64) != 10 {
		t.Fatalf("MaxSize(64) = %d, want 10", MaxSize(Width64))
	}
}
