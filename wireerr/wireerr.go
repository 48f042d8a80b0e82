// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wireerr maps every subsystem-local error category onto a small
// closed set of canonical conditions (EOF, bad message, value-too-large,
// argument-out-of-domain, not-enough-memory), the way every error category
// in the wire protocol ultimately reduces to one of a few caller-visible
// outcomes.
package wireerr

import "errors"

// Canonical is a closed enum of the conditions every subsystem-local error
// category reduces to.
type Canonical uint8

const (
	// EOF means the input was exhausted before a complete value could be read.
	EOF Canonical = iota + 1
	// BadMessage means the input was present but violated the wire format.
	BadMessage
	// ValueTooLarge means a value (length, size, count) exceeded a hard limit.
	ValueTooLarge
	// ArgumentOutOfDomain means a caller-supplied value is outside its valid domain.
	ArgumentOutOfDomain
	// NotEnoughMemory means an output buffer's capacity limit was exceeded.
	NotEnoughMemory
)

func (c Canonical) String() string {
	switch c {
	case EOF:
		return "eof"
	case BadMessage:
		return "bad message"
	case ValueTooLarge:
		return "value too large"
	case ArgumentOutOfDomain:
		return "argument out of domain"
	case NotEnoughMemory:
		return "not enough memory"
	default:
		return "unknown"
	}
}

// Kinded is implemented by every subsystem-local error value so that Is can
// classify it without importing each subsystem's package.
type Kinded interface {
	error
	Kind() Canonical
}

// Is reports whether err canonically equates to want, per spec's
// per-category equivalence table (e.g. varint.ErrEOF and wire.ErrEOF both
// answer true for Is(err, EOF)).
func Is(err error, want Canonical) bool {
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind() == want
	}
	return false
}
