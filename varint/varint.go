// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package varint implements Minecraft's variable-length integer encoding:
// 7 payload bits per byte, LSB first, with a continuation flag in bit 7.
//
// A decoded value has a declared width W in {16, 32, 64}; the maximum
// encoded length is ceil(W/7) bytes. Signed values are stored as
// two's-complement payload — a negative 32-bit value always occupies the
// full 5 bytes. The ZigZag variant maps signed N to unsigned
// ((N<<1) ^ (N>>(W-1))) before encoding.
package varint

import (
	"errors"
	"io"

	"code.hybscloud.com/mcwire/wireerr"
)

var (
	// ErrEOF reports that the input was exhausted mid-encoding.
	ErrEOF = newErr("varint: eof", wireerr.EOF)
	// ErrOverflow reports that the decoded payload bits exceed the target width.
	ErrOverflow = newErr("varint: overflow", wireerr.BadMessage)
	// ErrOverlong reports a non-normalized encoding: a trailing continuation
	// byte with zero payload bits after at least one prior byte.
	ErrOverlong = newErr("varint: overlong", wireerr.BadMessage)
	// ErrMax reports that the continuation flag was set on the byte at the
	// maximum permitted position for the target width.
	ErrMax = newErr("varint: too many bytes", wireerr.BadMessage)
)

type wireError struct {
	msg  string
	kind wireerr.Canonical
}

func newErr(msg string, kind wireerr.Canonical) *wireError {
	return &wireError{msg: msg, kind: kind}
}

func (e *wireError) Error() string           { return e.msg }
func (e *wireError) Kind() wireerr.Canonical { return e.kind }

// Width identifies the declared bit-width of a varint/varlong value.
type Width int

const (
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// MaxSize returns ceil(w/7), the maximum number of bytes a varint of the
// given declared width can occupy.
func MaxSize(w Width) int {
	n := int(w) / 7
	if int(w)%7 != 0 {
		n++
	}
	return n
}

// Size reports the number of bytes encoding v will occupy, treating v as
// an unsigned 64-bit payload (callers pass the already widened value).
func Size(v uint64) int {
	if v == 0 {
		return 1
	}
	n := 0
	for v != 0 {
		v >>= 7
		n++
	}
	return n
}

// Encode writes the varint representation of v (as an unsigned 64-bit
// payload) to out, returning the number of bytes written.
func Encode(v uint64, out io.ByteWriter) (int, error) {
	if v == 0 {
		if err := out.WriteByte(0); err != nil {
			return 0, err
		}
		return 1, nil
	}
	n := 0
	for {
		cur := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			cur |= 0x80
			if err := out.WriteByte(cur); err != nil {
				return n, err
			}
			n++
			continue
		}
		if err := out.WriteByte(cur); err != nil {
			return n, err
		}
		n++
		return n, nil
	}
}

// Decode reads a varint of the given declared width from r, returning the
// decoded unsigned 64-bit payload, the number of bytes consumed, and an
// error taken from {ErrEOF, ErrOverlong, ErrOverflow, ErrMax}.
func Decode(r io.ByteReader, w Width) (uint64, int, error) {
	maxLen := MaxSize(w)
	widthMax := ^uint64(0)
	if w < 64 {
		widthMax = uint64(1)<<uint(w) - 1
	}
	var u uint64
	for i := 0; i < maxLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, i, ErrEOF
			}
			return 0, i, err
		}
		cont := b&0x80 != 0
		material := uint64(b & 0x7f)
		if !cont && material == 0 {
			if i > 0 {
				return 0, i + 1, ErrOverlong
			}
			return 0, 1, nil
		}
		shift := uint(7 * i)
		shifted := material << shift
		if (shifted >> shift) != material {
			return 0, i + 1, ErrOverflow
		}
		u |= shifted
		if !cont {
			if u > widthMax {
				return 0, i + 1, ErrOverflow
			}
			return u, i + 1, nil
		}
	}
	return 0, maxLen, ErrMax
}

// EncodeZigZag maps a signed value of declared width w to its ZigZag
// unsigned form and writes it as a plain varint.
func EncodeZigZag(v int64, w Width, out io.ByteWriter) (int, error) {
	return Encode(zigZagEncode(v, w), out)
}

// DecodeZigZag decodes a plain varint of width w and un-maps it from
// ZigZag back to a signed value.
func DecodeZigZag(r io.ByteReader, w Width) (int64, int, error) {
	u, n, err := Decode(r, w)
	if err != nil {
		return 0, n, err
	}
	return zigZagDecode(u, w), n, nil
}

func zigZagEncode(v int64, w Width) uint64 {
	_ = w
	uv := uint64(v)
	return (uv << 1) ^ uint64(v>>63)
}

func zigZagDecode(u uint64, w Width) int64 {
	_ = w
	return int64(u>>1) ^ -int64(u&1)
}
