// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

// ValueKind tags which field of Value is populated. Go has no overloading,
// so the parser's eight-way scalar/string "value" dispatch (spec.md §4.11)
// becomes one struct with a discriminant instead of eight overloaded
// methods.
type ValueKind uint8

const (
	KindByte ValueKind = iota
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
)

// Value is the tagged union the parser and writer exchange for every
// scalar or string event.
type Value struct {
	Kind   ValueKind
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Str    string
}

func byteValue(v int8) Value      { return Value{Kind: KindByte, Byte: v} }
func shortValue(v int16) Value    { return Value{Kind: KindShort, Short: v} }
func intValue(v int32) Value      { return Value{Kind: KindInt, Int: v} }
func longValue(v int64) Value     { return Value{Kind: KindLong, Long: v} }
func floatValue(v float32) Value  { return Value{Kind: KindFloat, Float: v} }
func doubleValue(v float64) Value { return Value{Kind: KindDouble, Double: v} }
func stringValue(v string) Value  { return Value{Kind: KindString, Str: v} }
