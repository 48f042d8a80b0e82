// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

// PrefixView returns the first n bytes of b without copying. If n exceeds
// len(b), the whole of b is returned (mirrors a ConstBufferSequence prefix
// view's "bounds to the first N bytes" contract when N overruns).
func PrefixView(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n > len(b) {
		n = len(b)
	}
	return b[:n:n]
}

// SuffixView returns the last n bytes of b without copying, the dual of
// PrefixView. Used by the compression envelope to slice past the declared-
// size header in place.
func SuffixView(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n > len(b) {
		n = len(b)
	}
	start := len(b) - n
	return b[start:len(b):len(b)]
}
