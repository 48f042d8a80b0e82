// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wire implements the big-endian scalar and length-prefixed string
// codec that sits directly on top of the varint codec, plus the
// prefix/suffix buffer-sequence views used by the framing and compression
// layers to slice input in place.
package wire

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"code.hybscloud.com/mcwire/varint"
	"code.hybscloud.com/mcwire/wireerr"
)

// MaxStringLen is the Minecraft protocol's hard cap on a length-prefixed
// string's UTF-8 byte count.
const MaxStringLen = 32767

type wireError struct {
	msg  string
	kind wireerr.Canonical
}

func (e *wireError) Error() string           { return e.msg }
func (e *wireError) Kind() wireerr.Canonical { return e.kind }

var (
	// ErrEOF reports fewer bytes remained than the scalar or string required.
	ErrEOF = &wireError{msg: "wire: eof", kind: wireerr.EOF}
	// ErrNegativeLength reports a string length field that decoded negative.
	ErrNegativeLength = &wireError{msg: "wire: negative string length", kind: wireerr.ValueTooLarge}
	// ErrStringTooLong reports a string length field exceeding MaxStringLen.
	ErrStringTooLong = &wireError{msg: "wire: string too long", kind: wireerr.ValueTooLarge}
)

// PutUint16 writes v big-endian to b, which must have length >= 2.
func PutUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// PutUint32 writes v big-endian to b, which must have length >= 4.
func PutUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// PutUint64 writes v big-endian to b, which must have length >= 8.
func PutUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// WriteInt16 writes a signed 16-bit big-endian scalar.
func WriteInt16(w io.Writer, v int16) error {
	var b [2]byte
	PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])
	return err
}

// WriteInt32 writes a signed 32-bit big-endian scalar.
func WriteInt32(w io.Writer, v int32) error {
	var b [4]byte
	PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

// WriteInt64 writes a signed 64-bit big-endian scalar.
func WriteInt64(w io.Writer, v int64) error {
	var b [8]byte
	PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])
	return err
}

// WriteFloat32 writes an IEEE-754 32-bit float big-endian scalar.
func WriteFloat32(w io.Writer, v float32) error {
	return WriteInt32(w, int32(math.Float32bits(v)))
}

// WriteFloat64 writes an IEEE-754 64-bit float big-endian scalar.
func WriteFloat64(w io.Writer, v float64) error {
	return WriteInt64(w, int64(math.Float64bits(v)))
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrEOF
		}
		return err
	}
	return nil
}

// ReadInt16 reads a signed 16-bit big-endian scalar.
func ReadInt16(r io.Reader) (int16, error) {
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b[:])), nil
}

// ReadInt32 reads a signed 32-bit big-endian scalar.
func ReadInt32(r io.Reader) (int32, error) {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

// ReadInt64 reads a signed 64-bit big-endian scalar.
func ReadInt64(r io.Reader) (int64, error) {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

// ReadFloat32 reads an IEEE-754 32-bit float big-endian scalar.
func ReadFloat32(r io.Reader) (float32, error) {
	v, err := ReadInt32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

// ReadFloat64 reads an IEEE-754 64-bit float big-endian scalar.
func ReadFloat64(r io.Reader) (float64, error) {
	v, err := ReadInt64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// byteReader adapts an io.Reader lacking ReadByte (varint.Decode needs
// io.ByteReader) without allocating when the reader already satisfies it.
type byteReader struct{ r io.Reader }

func (b byteReader) ReadByte() (byte, error) {
	var one [1]byte
	n, err := b.r.Read(one[:])
	if n == 1 {
		return one[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

func asByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return byteReader{r: r}
}

// WriteString writes a varint length prefix (UTF-8 byte count, <=
// MaxStringLen) followed by the raw bytes of s.
func WriteString(w io.Writer, s string) error {
	if len(s) > MaxStringLen {
		return ErrStringTooLong
	}
	bw, ok := w.(io.ByteWriter)
	if !ok {
		bw = &byteWriterAdapter{w: w}
	}
	if _, err := varint.Encode(uint64(len(s)), bw); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

type byteWriterAdapter struct{ w io.Writer }

func (b *byteWriterAdapter) WriteByte(c byte) error {
	_, err := b.w.Write([]byte{c})
	return err
}

// ReadString reads a varint-prefixed string. A negative decoded length or a
// length exceeding MaxStringLen is an error; a length within bounds that
// overruns the remaining bytes reports ErrEOF.
func ReadString(r io.Reader) (string, error) {
	u, _, err := varint.Decode(asByteReader(r), varint.Width32)
	if err != nil {
		if errors.Is(err, varint.ErrEOF) {
			return "", ErrEOF
		}
		return "", err
	}
	n := int32(u)
	if n < 0 {
		return "", ErrNegativeLength
	}
	if n > MaxStringLen {
		return "", ErrStringTooLong
	}
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
