// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stream implements composable byte-stream layers that sit above a
// socket-like io.Reader/io.Writer and transform bytes in flight: a debug
// observation layer (hex-dump / text) and a symmetric CFB8 cipher layer.
// The framing package is one consumer of these layers.
//
// Layers are modeled without inheritance, per the teacher's flattened
// single-struct design: a Layer is anything that wraps an underlying
// io.Reader/io.Writer pair and exposes LowestLayer to walk to the bottom of
// a stack. There is no virtual dispatch — Go interfaces plus embedding
// supply everything spec.md's "layered streams without inheritance" note
// asks for.
package stream

import (
	"errors"
	"io"

	"code.hybscloud.com/iox"
)

// These re-export the teacher's non-blocking control-flow sentinels so
// callers wiring a non-blocking net.Conn (or anything else that speaks
// iox's conventions) underneath a layer stack don't need their own import
// of iox to recognize them. Every layer in this package forwards an
// underlying stream's error unchanged, so ErrWouldBlock/ErrMore surface
// through CipherLayer and DebugLayer exactly as they would through a bare
// connection — partial progress (n) reported alongside either error is
// always real progress, per spec.md §7's "stream-layer operations
// translate underlying-stream errors unchanged" propagation policy.
var (
	// ErrWouldBlock means the next layer can make no further progress
	// without waiting; any n returned alongside it is still real progress.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means the next layer's operation is still active and more
	// data is expected from the same call; it is not io.EOF.
	ErrMore = iox.ErrMore
)

// Retryable reports whether err is the non-blocking "try again later"
// signal, unwrapping through any layer that forwarded it unchanged.
func Retryable(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// Layer is a stream that may wrap another stream (its "next layer").
// LowestLayer walks to the bottom of a stack of layers, returning itself
// when it has no next layer — the direct analogue of mcpp::lowest_layer's
// nested-typedef walk, expressed as a method instead of a trait.
type Layer interface {
	io.Reader
	io.Writer
	LowestLayer() any
}

// leaf wraps a plain io.ReadWriter that is not itself a Layer, so that
// Leaf can always produce something satisfying Layer.
type leaf struct {
	io.Reader
	io.Writer
	inner any
}

func (l *leaf) LowestLayer() any { return l.inner }

// Leaf adapts an arbitrary io.Reader/io.Writer pair (e.g. a net.Conn) into
// the bottom of a layer stack.
func Leaf(rw io.ReadWriter) Layer {
	return &leaf{Reader: rw, Writer: rw, inner: rw}
}

// LowestLayer walks a stack of layers to the bottom-most one, following
// LowestLayer as long as it keeps returning something that is itself a
// Layer, stopping at the first non-Layer value (typically a net.Conn).
func LowestLayer(l Layer) any {
	cur := l.LowestLayer()
	for {
		next, ok := cur.(Layer)
		if !ok {
			return cur
		}
		lower := next.LowestLayer()
		if lower == cur {
			return cur
		}
		cur = lower
	}
}
