// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package checked provides integer conversion and arithmetic that reports
// overflow instead of wrapping or truncating silently.
//
// The framing package's Write and Compress cast body lengths through Cast
// so that an unrepresentable length header becomes an explicit, checked
// condition.
package checked


// Integer is the set of built-in integer kinds checked arithmetic operates on.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Option stands in for an optional result: Ok is false iff the operation
// overflowed or an input was itself empty.
type Option[T Integer] struct {
	Value T
	Ok    bool
}

// Some wraps v as a present Option.
func Some[T Integer](v T) Option[T] { return Option[T]{Value: v, Ok: true} }

// None returns an absent Option of T.
func None[T Integer]() Option[T] { return Option[T]{} }

// bounds describes the representable range of an integer kind. umax is
// only meaningful when unsigned; smin/smax are only meaningful when !unsigned.
type bounds struct {
	unsigned   bool
	smin, smax int64
	umax       uint64
}

func boundsOf[T Integer]() bounds {
	var zero T
	switch any(zero).(type) {
	case int8:
		return bounds{smin: -1 << 7, smax: 1<<7 - 1}
	case int16:
		return bounds{smin: -1 << 15, smax: 1<<15 - 1}
	case int32:
		return bounds{smin: -1 << 31, smax: 1<<31 - 1}
	case int64, int:
		return bounds{smin: -1 << 63, smax: 1<<63 - 1}
	case uint8:
		return bounds{unsigned: true, umax: 1<<8 - 1}
	case uint16:
		return bounds{unsigned: true, umax: 1<<16 - 1}
	case uint32:
		return bounds{unsigned: true, umax: 1<<32 - 1}
	case uint64, uint:
		return bounds{unsigned: true, umax: 1<<64 - 1}
	default:
		return bounds{smin: -1 << 31, smax: 1<<31 - 1}
	}
}

func minMax[T Integer]() (min, max int64, unsigned bool) {
	b := boundsOf[T]()
	return b.smin, b.smax, b.unsigned
}

// Cast attempts to convert from into To, succeeding iff the mathematical
// value of from is representable in To without truncation.
func Cast[To, From Integer](from From) (To, bool) {
	fb := boundsOf[From]()
	tb := boundsOf[To]()

	if fb.unsigned {
		u := uint64(from)
		if tb.unsigned {
			if u > tb.umax {
				return 0, false
			}
			return To(from), true
		}
		if u > uint64(tb.smax) {
			return 0, false
		}
		return To(from), true
	}

	v := int64(from)
	if tb.unsigned {
		if v < 0 || uint64(v) > tb.umax {
			return 0, false
		}
		return To(from), true
	}
	if v < tb.smin || v > tb.smax {
		return 0, false
	}
	return To(from), true
}

// Add returns the checked sum of xs, or ok=false on overflow.
// An empty argument list returns ok=false (there is no identity to fall
// back on for a "size of nothing" computation in this library's callers).
func Add[T Integer](xs ...T) (T, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	_, _, unsigned := minMax[T]()
	if unsigned {
		var sum uint64
		for _, x := range xs {
			ux := uint64(x)
			next := sum + ux
			if next < sum {
				return 0, false
			}
			sum = next
		}
		v, ok := Cast[T](sum)
		return v, ok
	}
	var sum int64
	for _, x := range xs {
		ix := int64(x)
		next := sum + ix
		// overflow iff operands share sign and result differs in sign
		if (ix > 0 && next < sum) || (ix < 0 && next > sum) {
			return 0, false
		}
		sum = next
	}
	return Cast[T](sum)
}

// Mul returns the checked product of xs, or ok=false on overflow.
func Mul[T Integer](xs ...T) (T, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	_, _, unsigned := minMax[T]()
	if unsigned {
		var prod uint64 = 1
		for _, x := range xs {
			ux := uint64(x)
			if ux != 0 && prod > (1<<64-1)/ux {
				return 0, false
			}
			prod *= ux
		}
		return Cast[T](prod)
	}
	var prod int64 = 1
	for _, x := range xs {
		ix := int64(x)
		if prod != 0 {
			r := prod * ix
			if r/prod != ix {
				return 0, false
			}
			prod = r
		}
	}
	return Cast[T](prod)
}

// AddOpt is the Option-propagating form of Add: any absent input makes
// the whole computation absent, short-circuiting before overflow checks.
func AddOpt[T Integer](xs ...Option[T]) Option[T] {
	vals := make([]T, 0, len(xs))
	for _, x := range xs {
		if !x.Ok {
			return None[T]()
		}
		vals = append(vals, x.Value)
	}
	v, ok := Add(vals...)
	return Option[T]{Value: v, Ok: ok}
}

// MulOpt is the Option-propagating form of Mul.
func MulOpt[T Integer](xs ...Option[T]) Option[T] {
	vals := make([]T, 0, len(xs))
	for _, x := range xs {
		if !x.Ok {
			return None[T]()
		}
		vals = append(vals, x.Value)
	}
	v, ok := Mul(vals...)
	return Option[T]{Value: v, Ok: ok}
}
