// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"fmt"
	"io"
)

// Mode selects how DebugLayer formats the bytes it observes.
type Mode uint8

const (
	// HexDump renders hex pairs with a printable gutter, like a classic hexdump.
	HexDump Mode = iota
	// Text writes the raw bytes through to the sink unmodified.
	Text
)

// DebugOptions configures a DebugLayer.
type DebugOptions struct {
	Width     int
	Uppercase bool
	Name      string
	Mode      Mode
}

var defaultDebugOptions = DebugOptions{Width: 16, Mode: HexDump}

// DebugOption configures a DebugLayer, following the functional-options
// idiom used throughout this module.
type DebugOption func(*DebugOptions)

// WithWidth sets the hex-dump column count. Must be > 0.
func WithWidth(n int) DebugOption { return func(o *DebugOptions) { o.Width = n } }

// WithUppercase toggles uppercase hex digits.
func WithUppercase(b bool) DebugOption { return func(o *DebugOptions) { o.Uppercase = b } }

// WithName sets a label printed before each formatted block in HexDump
// mode; Text mode writes no label.
func WithName(name string) DebugOption { return func(o *DebugOptions) { o.Name = name } }

// WithMode selects HexDump or Text formatting.
func WithMode(m Mode) DebugOption { return func(o *DebugOptions) { o.Mode = m } }

// DebugLayer writes every byte that crosses it to a log sink before passing
// it through unchanged. Partial lines carry over across calls in HexDump
// mode; Flush forces the current partial line out.
type DebugLayer struct {
	next Layer
	sink io.Writer
	opts DebugOptions

	// partial hex-dump line state, carried across calls.
	pending []byte
}

// NewDebugLayer wraps next, writing a formatted trace of every byte that
// crosses it to sink.
func NewDebugLayer(next Layer, sink io.Writer, opts ...DebugOption) (*DebugLayer, error) {
	o := defaultDebugOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.Width <= 0 {
		return nil, errInvalidWidth
	}
	return &DebugLayer{next: next, sink: sink, opts: o}, nil
}

var errInvalidWidth = fmt.Errorf("stream: debug layer width must be > 0")

// LowestLayer delegates to the wrapped layer.
func (d *DebugLayer) LowestLayer() any { return LowestLayer(d.next) }

// Read reads from the next layer, logging the bytes actually read.
func (d *DebugLayer) Read(p []byte) (int, error) {
	n, err := d.next.Read(p)
	if n > 0 {
		d.trace("read", p[:n])
	}
	return n, err
}

// Write writes p to the next layer, logging the bytes on the way through.
func (d *DebugLayer) Write(p []byte) (int, error) {
	if len(p) > 0 {
		d.trace("write", p)
	}
	return d.next.Write(p)
}

func (d *DebugLayer) trace(dir string, p []byte) {
	switch d.opts.Mode {
	case Text:
		d.sink.Write(p)
	default:
		d.hexDump(dir, p)
	}
}

func (d *DebugLayer) hexDump(dir string, p []byte) {
	if d.opts.Name != "" {
		fmt.Fprintf(d.sink, "[%s %s %d bytes]\n", d.opts.Name, dir, len(p))
	}
	d.pending = append(d.pending, p...)
	for len(d.pending) >= d.opts.Width {
		d.writeLine(d.pending[:d.opts.Width])
		d.pending = d.pending[d.opts.Width:]
	}
}

// Flush forces out any partial hex-dump line buffered by prior Read/Write
// calls, padding the hex column so the printable gutter still lines up.
func (d *DebugLayer) Flush() {
	if len(d.pending) == 0 {
		return
	}
	d.writeLine(d.pending)
	d.pending = nil
}

func (d *DebugLayer) writeLine(line []byte) {
	hexFmt := "%02x "
	if d.opts.Uppercase {
		hexFmt = "%02X "
	}
	for i := 0; i < d.opts.Width; i++ {
		if i < len(line) {
			fmt.Fprintf(d.sink, hexFmt, line[i])
		} else {
			d.sink.Write([]byte("   "))
		}
	}
	d.sink.Write([]byte(" "))
	for _, b := range line {
		if b >= 0x20 && b < 0x7f {
			d.sink.Write([]byte{b})
		} else {
			d.sink.Write([]byte{'.'})
		}
	}
	d.sink.Write([]byte("\n"))
}
