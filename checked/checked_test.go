// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package checked

import "testing"

func TestCast_WithinRange(t *testing.T) {
	v, ok := Cast[int8](int32(100))
	if !ok || v != 100 {
		t.Fatalf("got (%v, %v), want (100, true)", v, ok)
	}
}

func TestCast_OutOfRange(t *testing.T) {
	_, ok := Cast[int8](int32(200))
	if ok {
		t.Fatalf("want overflow rejected")
	}
}

func TestCast_UnsignedToSignedBoundary(t *testing.T) {
	if _, ok := Cast[int8](uint8(127)); !ok {
		t.Fatalf("127 must fit in int8")
	}
	if _, ok := Cast[int8](uint8(128)); ok {
		t.Fatalf("128 must not fit in int8")
	}
}

func TestCast_UnsignedMaxFitsUint64(t *testing.T) {
	var max uint64 = 1<<64 - 1
	v, ok := Cast[uint64](max)
	if !ok || v != max {
		t.Fatalf("got (%v, %v), want (%v, true)", v, ok, max)
	}
	if _, ok := Cast[int64](max); ok {
		t.Fatalf("uint64 max must not fit in int64")
	}
}

func TestCast_NegativeToUnsigned(t *testing.T) {
	if _, ok := Cast[uint8](int8(-1)); ok {
		t.Fatalf("negative value must not fit an unsigned type")
	}
}

func TestAdd_NoOverflow(t *testing.T) {
	v, ok := Add[int8](1, 2, 3)
	if !ok || v != 6 {
		t.Fatalf("got (%v, %v), want (6, true)", v, ok)
	}
}

func TestAdd_Overflow(t *testing.T) {
	_, ok := Add[int8](120, 10)
	if ok {
		t.Fatalf("want overflow rejected")
	}
}

func TestAdd_EmptyIsRejected(t *testing.T) {
	_, ok := Add[int32]()
	if ok {
		t.Fatalf("want empty argument list rejected")
	}
}

func TestMul_NoOverflow(t *testing.T) {
	v, ok := Mul[int16](3, 4, 5)
	if !ok || v != 60 {
		t.Fatalf("got (%v, %v), want (60, true)", v, ok)
	}
}

func TestMul_Overflow(t *testing.T) {
	_, ok := Mul[int8](20, 20)
	if ok {
		t.Fatalf("want overflow rejected")
	}
}

func TestAddOpt_PropagatesNone(t *testing.T) {
	r := AddOpt(Some[int32](1), None[int32](), Some[int32](2))
	if r.Ok {
		t.Fatalf("want None to propagate")
	}
}

func TestAddOpt_AllSome(t *testing.T) {
	r := AddOpt(Some[int32](1), Some[int32](2))
	if !r.Ok || r.Value != 3 {
		t.Fatalf("got %+v, want {3 true}", r)
	}
}

func TestMulOpt_OverflowBecomesNone(t *testing.T) {
	r := MulOpt(Some[int8](20), Some[int8](20))
	if r.Ok {
		t.Fatalf("want overflow to report None")
	}
}
