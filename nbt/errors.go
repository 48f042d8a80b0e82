// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

import "code.hybscloud.com/mcwire/wireerr"

type wireError struct {
	msg  string
	kind wireerr.Canonical
}

func (e *wireError) Error() string           { return e.msg }
func (e *wireError) Kind() wireerr.Canonical { return e.kind }

var (
	// ErrEOF is reported when the input ends mid-tag, mid-name, or
	// mid-value.
	ErrEOF = &wireError{"nbt: unexpected eof", wireerr.EOF}

	// ErrFirstTagNotCompound is reported when a document's first byte is
	// not TAG_Compound (10); every NBT document is rooted at a single
	// named compound.
	ErrFirstTagNotCompound = &wireError{"nbt: first tag is not TAG_Compound", wireerr.BadMessage}

	// ErrInvalidTag is reported when a compound member, or a non-empty
	// list's element tag, names a byte outside 1..12.
	ErrInvalidTag = &wireError{"nbt: invalid tag", wireerr.BadMessage}

	// ErrNegativeLength is reported when a list or array declares a
	// negative element count.
	ErrNegativeLength = &wireError{"nbt: negative length", wireerr.BadMessage}

	// ErrStringTooLong is reported by Writer when a name or TAG_String
	// value exceeds the 32767-byte cap spec.md places on it, even though
	// the u16 length field could address up to 65535.
	ErrStringTooLong = &wireError{"nbt: string exceeds 32767 bytes", wireerr.ValueTooLarge}
)
