// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"unsafe"

	"code.hybscloud.com/mcwire/internal/bo"
)

// Scalar is the set of trivially-copyable scalar kinds ToEndian/FromEndian
// operate on directly (floats are handled via their bit-pattern integer
// counterparts by WriteFloat32/64 and ReadFloat32/64 in endian.go).
type Scalar interface {
	~uint16 | ~uint32 | ~uint64 | ~int16 | ~int32 | ~int64
}

// ToEndian copies v's native in-memory representation into b (sized for T)
// and reverses it iff the host is not already big-endian, leaving b holding
// v in network (big-endian) byte order. This is the literal memcpy-then-
// conditionally-reverse construction the wire format describes, consulting
// the host's actual byte order via internal/bo rather than assuming it.
func ToEndian[T Scalar](v T, b []byte) {
	size := int(unsafe.Sizeof(v))
	native := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	copy(b, native)
	if bo.Native() != binary.BigEndian {
		reverse(b[:size])
	}
}

// FromEndian is the inverse of ToEndian: b (sized for T, in network/
// big-endian order) is copied into a T-sized value, reversing the bytes
// first iff the host is not big-endian.
func FromEndian[T Scalar](b []byte) T {
	var v T
	size := int(unsafe.Sizeof(v))
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	copy(dst, b[:size])
	if bo.Native() != binary.BigEndian {
		reverse(dst)
	}
	return v
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
