// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

import (
	"errors"
	"io"

	"code.hybscloud.com/mcwire/wire"
)

type frameKind int

const (
	frameCompound frameKind = iota
	frameList
)

type frame struct {
	kind      frameKind
	elemTag   Tag
	remaining int32
}

// Parse drives obs over the NBT document read from r: begin, the root
// compound's tag and name, every member or element event in document
// order, and end — or stops at the first error, reporting it to
// obs.Error before returning it.
//
// The root compound is mandatory: a stream whose first byte is not
// TAG_Compound (10) fails with ErrFirstTagNotCompound; Begin is the only
// event that fires before the resulting Error.
func Parse(r io.Reader, obs Observer) error {
	cr := &countingReader{r: r}

	abort := func(err error) error {
		obs.Error(err, cr.pos)
		return err
	}
	eof := func(err error) error {
		if errors.Is(err, io.EOF) {
			return ErrEOF
		}
		return err
	}

	if err := obs.Begin(cr.pos); err != nil {
		return abort(err)
	}

	root, err := cr.readTag()
	if err != nil {
		return abort(eof(err))
	}
	if root != TagCompound {
		return abort(ErrFirstTagNotCompound)
	}
	if err := obs.Tag(root, cr.pos); err != nil {
		return abort(err)
	}

	name, err := cr.readName()
	if err != nil {
		return abort(err)
	}
	if err := obs.Name(name, cr.pos); err != nil {
		return abort(err)
	}
	if err := obs.BeginCompound(cr.pos); err != nil {
		return abort(err)
	}

	stack := []frame{{kind: frameCompound}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		switch top.kind {
		case frameCompound:
			t, err := cr.readTag()
			if err != nil {
				return abort(eof(err))
			}
			if t == TagEnd {
				if err := obs.Tag(t, cr.pos); err != nil {
					return abort(err)
				}
				if err := obs.EndCompound(cr.pos); err != nil {
					return abort(err)
				}
				stack = stack[:len(stack)-1]
				continue
			}
			if !t.Valid() {
				return abort(ErrInvalidTag)
			}
			if err := obs.Tag(t, cr.pos); err != nil {
				return abort(err)
			}
			memberName, err := cr.readName()
			if err != nil {
				return abort(err)
			}
			if err := obs.Name(memberName, cr.pos); err != nil {
				return abort(err)
			}
			if err := dispatchValue(cr, t, obs, &stack); err != nil {
				return abort(err)
			}

		case frameList:
			if top.remaining == 0 {
				if err := obs.EndList(cr.pos); err != nil {
					return abort(err)
				}
				stack = stack[:len(stack)-1]
				continue
			}
			stack[len(stack)-1].remaining--
			if err := dispatchValue(cr, top.elemTag, obs, &stack); err != nil {
				return abort(err)
			}
		}
	}

	if err := obs.End(cr.pos); err != nil {
		return abort(err)
	}
	return nil
}

// dispatchValue reads and reports the value for one occurrence of tag t —
// a compound member or a list element — pushing a new frame onto *stack
// for the two container tags.
func dispatchValue(cr *countingReader, t Tag, obs Observer, stack *[]frame) error {
	switch t {
	case TagByte:
		v, err := cr.readI8()
		if err != nil {
			return err
		}
		return obs.Value(byteValue(v), cr.pos)

	case TagShort:
		v, err := wire.ReadInt16(cr)
		if err != nil {
			return mapWireEOF(err)
		}
		return obs.Value(shortValue(v), cr.pos)

	case TagInt:
		v, err := wire.ReadInt32(cr)
		if err != nil {
			return mapWireEOF(err)
		}
		return obs.Value(intValue(v), cr.pos)

	case TagLong:
		v, err := wire.ReadInt64(cr)
		if err != nil {
			return mapWireEOF(err)
		}
		return obs.Value(longValue(v), cr.pos)

	case TagFloat:
		v, err := wire.ReadFloat32(cr)
		if err != nil {
			return mapWireEOF(err)
		}
		return obs.Value(floatValue(v), cr.pos)

	case TagDouble:
		v, err := wire.ReadFloat64(cr)
		if err != nil {
			return mapWireEOF(err)
		}
		return obs.Value(doubleValue(v), cr.pos)

	case TagString:
		s, err := cr.readName()
		if err != nil {
			return err
		}
		return obs.Value(stringValue(s), cr.pos)

	case TagByteArray:
		if err := obs.BeginByteArray(cr.pos); err != nil {
			return err
		}
		n, err := cr.readI32()
		if err != nil {
			return err
		}
		if n < 0 {
			return ErrNegativeLength
		}
		if err := obs.Length(n, cr.pos); err != nil {
			return err
		}
		for i := int32(0); i < n; i++ {
			v, err := cr.readI8()
			if err != nil {
				return err
			}
			if err := obs.Value(byteValue(v), cr.pos); err != nil {
				return err
			}
		}
		return obs.EndByteArray(cr.pos)

	case TagIntArray:
		if err := obs.BeginIntArray(cr.pos); err != nil {
			return err
		}
		n, err := cr.readI32()
		if err != nil {
			return err
		}
		if n < 0 {
			return ErrNegativeLength
		}
		if err := obs.Length(n, cr.pos); err != nil {
			return err
		}
		for i := int32(0); i < n; i++ {
			v, err := wire.ReadInt32(cr)
			if err != nil {
				return mapWireEOF(err)
			}
			if err := obs.Value(intValue(v), cr.pos); err != nil {
				return err
			}
		}
		return obs.EndIntArray(cr.pos)

	case TagLongArray:
		if err := obs.BeginLongArray(cr.pos); err != nil {
			return err
		}
		n, err := cr.readI32()
		if err != nil {
			return err
		}
		if n < 0 {
			return ErrNegativeLength
		}
		if err := obs.Length(n, cr.pos); err != nil {
			return err
		}
		for i := int32(0); i < n; i++ {
			v, err := wire.ReadInt64(cr)
			if err != nil {
				return mapWireEOF(err)
			}
			if err := obs.Value(longValue(v), cr.pos); err != nil {
				return err
			}
		}
		return obs.EndLongArray(cr.pos)

	case TagList:
		if err := obs.BeginList(cr.pos); err != nil {
			return err
		}
		elemTag, err := cr.readTag()
		if err != nil {
			return err
		}
		n, err := cr.readI32()
		if err != nil {
			return err
		}
		if n < 0 {
			return ErrNegativeLength
		}
		// A zero-length list may legitimately declare TAG_End as its
		// element tag (no elements ever need validating); a non-empty
		// list must name a real tag. Validate before emitting Tag/Length
		// so an invalid pairing never reaches the observer.
		if n > 0 && !elemTag.Valid() {
			return ErrInvalidTag
		}
		if err := obs.Tag(elemTag, cr.pos); err != nil {
			return err
		}
		if err := obs.Length(n, cr.pos); err != nil {
			return err
		}
		*stack = append(*stack, frame{kind: frameList, elemTag: elemTag, remaining: n})
		return nil

	case TagCompound:
		if err := obs.BeginCompound(cr.pos); err != nil {
			return err
		}
		*stack = append(*stack, frame{kind: frameCompound})
		return nil

	default:
		return ErrInvalidTag
	}
}

func mapWireEOF(err error) error {
	if errors.Is(err, wire.ErrEOF) {
		return ErrEOF
	}
	return err
}
