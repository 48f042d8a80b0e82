// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

import (
	"encoding/binary"
	"io"

	"code.hybscloud.com/mcwire/wire"
)

// Writer serializes the byte-producing events Observer receives (Tag, Name,
// Length, Value) back to bytes. It has no BeginX/EndX methods: container
// begin and end events carry no bytes of their own, so a bridge from an
// Observer simply drops them. A Parse/Writer pair round-trips a document
// byte-for-byte
// provided the caller replays events in the order Parse would have
// produced them. Writer does no structural validation of its own — it
// trusts its caller to replay a well-formed event stream, the same way
// Parse trusts its input tag bytes once Valid() accepts them.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer that emits to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first error encountered by any method, or nil.
func (wr *Writer) Err() error { return wr.err }

func (wr *Writer) fail(err error) error {
	if wr.err == nil {
		wr.err = err
	}
	return wr.err
}

// Tag writes one tag byte.
func (wr *Writer) Tag(t Tag) error {
	if wr.err != nil {
		return wr.err
	}
	if _, err := wr.w.Write([]byte{byte(t)}); err != nil {
		return wr.fail(err)
	}
	return nil
}

// Name writes a u16-length-prefixed name or TAG_String value.
func (wr *Writer) Name(s string) error {
	if wr.err != nil {
		return wr.err
	}
	if len(s) > 0x7fff {
		return wr.fail(ErrStringTooLong)
	}
	var lb [2]byte
	binary.BigEndian.PutUint16(lb[:], uint16(len(s)))
	if _, err := wr.w.Write(lb[:]); err != nil {
		return wr.fail(err)
	}
	if len(s) > 0 {
		if _, err := io.WriteString(wr.w, s); err != nil {
			return wr.fail(err)
		}
	}
	return nil
}

// Length writes a declared list or array element count.
func (wr *Writer) Length(n int32) error {
	if wr.err != nil {
		return wr.err
	}
	if err := wire.WriteInt32(wr.w, n); err != nil {
		return wr.fail(err)
	}
	return nil
}

// Value writes one scalar or string value per v.Kind.
func (wr *Writer) Value(v Value) error {
	if wr.err != nil {
		return wr.err
	}
	var err error
	switch v.Kind {
	case KindByte:
		_, err = wr.w.Write([]byte{byte(v.Byte)})
	case KindShort:
		err = wire.WriteInt16(wr.w, v.Short)
	case KindInt:
		err = wire.WriteInt32(wr.w, v.Int)
	case KindLong:
		err = wire.WriteInt64(wr.w, v.Long)
	case KindFloat:
		err = wire.WriteFloat32(wr.w, v.Float)
	case KindDouble:
		err = wire.WriteFloat64(wr.w, v.Double)
	case KindString:
		return wr.Name(v.Str)
	}
	if err != nil {
		return wr.fail(err)
	}
	return nil
}
