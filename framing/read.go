// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framing

import (
	"errors"
	"io"

	"code.hybscloud.com/mcwire/varint"
)

// Hook inspects the decoded varint length of an incoming packet before its
// body is read, and may abort the read by returning a non-nil error.
// Hooks compose: ReadWithHooks invokes them in order, the first error
// wins — the outer hook in a composition is simply the one listed first.
//
// n is the number of header bytes consumed decoding the length (this is
// the "bytes_transferred" spec.md's after-length hook receives).
type Hook func(n int, length uint32) error

// LimitHook rejects any declared length exceeding max, reporting ErrTooLong.
func LimitHook(max uint32) Hook {
	return func(_ int, length uint32) error {
		if length > max {
			return ErrTooLong
		}
		return nil
	}
}

// countingByteReader adapts an io.Reader to io.ByteReader, counting bytes consumed.
type countingByteReader struct {
	r io.Reader
	n int
}

func (c *countingByteReader) ReadByte() (byte, error) {
	var b [1]byte
	nr, err := c.r.Read(b[:])
	if nr == 1 {
		c.n++
		return b[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

// Read reads one framed message from r: a varint length prefix followed by
// exactly that many body bytes. It is the convenience form that wires no
// hooks, equivalent to spec.md's async_read(stream, buffer, token).
func Read(r io.Reader) ([]byte, error) {
	return ReadWithHooks(r)
}

// ReadWithHooks reads one framed message from r, invoking each hook (in
// order) with the decoded length before the body is read. A hook error
// aborts the read without consuming the body.
func ReadWithHooks(r io.Reader, hooks ...Hook) ([]byte, error) {
	cr := &countingByteReader{r: r}
	u, n, err := varint.Decode(cr, varint.Width32)
	if err != nil {
		if errors.Is(err, varint.ErrEOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	_ = n
	length := uint32(u)

	for _, h := range hooks {
		if h == nil {
			continue
		}
		if err := h(cr.n, length); err != nil {
			return nil, err
		}
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return body, nil
}
