// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

import (
	"encoding/binary"
	"errors"
	"io"
)

// countingReader tracks the byte offset consumed from an underlying
// io.Reader so Parse can report it to Observer methods.
type countingReader struct {
	r   io.Reader
	pos int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.pos += int64(n)
	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	var b [1]byte
	n, err := c.r.Read(b[:])
	if n == 1 {
		c.pos++
		return b[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

func (c *countingReader) readFull(b []byte) error {
	_, err := io.ReadFull(c, b)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrEOF
		}
		return err
	}
	return nil
}

func (c *countingReader) readTag() (Tag, error) {
	b, err := c.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrEOF
		}
		return 0, err
	}
	return Tag(b), nil
}

// readName reads a u16-length-prefixed byte string: NBT's own string
// encoding for tag names and TAG_String values, distinct from the wire
// package's varint-prefixed protocol strings.
func (c *countingReader) readName() (string, error) {
	var lb [2]byte
	if err := c.readFull(lb[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lb[:])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := c.readFull(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (c *countingReader) readI8() (int8, error) {
	var b [1]byte
	if err := c.readFull(b[:]); err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (c *countingReader) readI32() (int32, error) {
	var b [4]byte
	if err := c.readFull(b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}
