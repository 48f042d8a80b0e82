// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

// Observer receives push-parser events as Parse walks an NBT document. pos
// is the byte offset, within the stream Parse was given, at which the event
// occurred.
//
// Every method but Error may abort the parse by returning a non-nil error;
// Parse then calls Error with that error and the current position before
// returning it to its own caller. When a document parses successfully the
// Observer sees a well-formed stream of calls satisfying, for every BeginX,
// exactly one matching EndX; a parse that stops with an error leaves the
// open containers without their EndX. The Observer needs to track nesting
// itself if it cares — Parse
// does not pass a depth or parent pointer.
type Observer interface {
	// Begin announces the start of a document; it is always the first
	// call. End announces a document closed cleanly; it is always the
	// last call on success.
	Begin(pos int64) error
	End(pos int64) error

	// Error reports that the parse is aborting, either because a lower
	// layer failed or because an Observer method returned a non-nil
	// error. It is never itself capable of aborting further.
	Error(err error, pos int64)

	// Tag reports a tag byte: the root compound's own tag, a compound
	// member's tag, or a list's element tag.
	Tag(t Tag, pos int64) error

	// Name reports a length-prefixed name: the root compound's name, or
	// a compound member's name. Lists and array elements are unnamed.
	Name(name string, pos int64) error

	// Length reports a declared element count: a list's or an array's.
	Length(n int32, pos int64) error

	BeginCompound(pos int64) error
	EndCompound(pos int64) error

	BeginList(pos int64) error
	EndList(pos int64) error

	BeginByteArray(pos int64) error
	EndByteArray(pos int64) error

	BeginIntArray(pos int64) error
	EndIntArray(pos int64) error

	BeginLongArray(pos int64) error
	EndLongArray(pos int64) error

	// Value reports one scalar: a TAG_Byte/Short/Int/Long/Float/Double/
	// String member or list element, or one element of a byte/int/long
	// array.
	Value(v Value, pos int64) error
}

// NopObserver implements Observer with every method a no-op returning nil.
// Embed it to implement only the events a particular Observer cares about.
type NopObserver struct{}

func (NopObserver) Begin(int64) error          { return nil }
func (NopObserver) End(int64) error            { return nil }
func (NopObserver) Error(error, int64)         {}
func (NopObserver) Tag(Tag, int64) error       { return nil }
func (NopObserver) Name(string, int64) error   { return nil }
func (NopObserver) Length(int32, int64) error  { return nil }
func (NopObserver) BeginCompound(int64) error  { return nil }
func (NopObserver) EndCompound(int64) error    { return nil }
func (NopObserver) BeginList(int64) error      { return nil }
func (NopObserver) EndList(int64) error        { return nil }
func (NopObserver) BeginByteArray(int64) error { return nil }
func (NopObserver) EndByteArray(int64) error   { return nil }
func (NopObserver) BeginIntArray(int64) error  { return nil }
func (NopObserver) EndIntArray(int64) error    { return nil }
func (NopObserver) BeginLongArray(int64) error { return nil }
func (NopObserver) EndLongArray(int64) error   { return nil }
func (NopObserver) Value(Value, int64) error   { return nil }
