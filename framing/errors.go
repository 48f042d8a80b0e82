// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package framing implements Minecraft's packet framing: a varint length
// prefix around a body on the wire, hook-composable length validation on
// read, and the zlib-wrapped compression envelope used once a session
// negotiates compression.
//
// Wire format (uncompressed): varint(len) body[len].
// Wire format (compressed):   varint(len) varint(declared_uncompressed_size) rest
// where rest is either literal bytes (declared == 0) or a deflate stream
// that must inflate to exactly declared bytes.
package framing

import "code.hybscloud.com/mcwire/wireerr"

type wireError struct {
	msg  string
	kind wireerr.Canonical
}

func (e *wireError) Error() string           { return e.msg }
func (e *wireError) Kind() wireerr.Canonical { return e.kind }

var (
	// ErrTooLong reports that a hook rejected a declared body length as
	// exceeding a configured bound.
	ErrTooLong = &wireError{msg: "framing: message too long", kind: wireerr.ValueTooLarge}

	// ErrValueTooLarge reports that a body's size cannot be represented as
	// an unsigned 32-bit varint length.
	ErrValueTooLarge = &wireError{msg: "framing: body size not representable", kind: wireerr.ValueTooLarge}

	// ErrLengthNegative reports a decompression envelope whose declared
	// uncompressed size decoded negative.
	ErrLengthNegative = &wireError{msg: "framing: declared size negative", kind: wireerr.ValueTooLarge}

	// ErrPadded reports that bytes remained in the input after a
	// deflate/inflate stream was fully consumed.
	ErrPadded = &wireError{msg: "framing: trailing bytes after compressed body", kind: wireerr.BadMessage}

	// ErrWrongLength reports that the inflated byte count did not match
	// the envelope's declared uncompressed size.
	ErrWrongLength = &wireError{msg: "framing: inflated size does not match declared size", kind: wireerr.BadMessage}

	// ErrSizeOverflow reports that an uncompressed body's length does not
	// fit a signed 32-bit declared-size header.
	ErrSizeOverflow = &wireError{msg: "framing: uncompressed size overflow", kind: wireerr.ValueTooLarge}
)
