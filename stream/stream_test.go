// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"errors"
	"io"
	"strings"
	"testing"
)

// wouldBlockAfter returns n plaintext/ciphertext bytes and ErrWouldBlock,
// the shape a non-blocking net.Conn reports on partial progress.
type wouldBlockAfter struct {
	data []byte
}

func (w *wouldBlockAfter) Read(p []byte) (int, error) {
	n := copy(p, w.data)
	return n, ErrWouldBlock
}

func (w *wouldBlockAfter) Write(p []byte) (int, error) {
	n := copy(w.data, p)
	return n, ErrWouldBlock
}

func TestCipherLayer_PropagatesWouldBlockWithPartialProgress(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	block, _ := aes.NewCipher(key)

	plaintext := []byte("partial read before the connection would block")
	ciphertext := make([]byte, len(plaintext))
	enc := NewCFB8Encryptor(block, iv)
	enc.XORKeyStream(ciphertext, plaintext)

	next := &wouldBlockAfter{data: ciphertext}
	decBlock, _ := aes.NewCipher(key)
	layer := NewCipherLayer(Leaf(next), nil, NewCFB8Decryptor(decBlock, iv))

	got := make([]byte, len(plaintext))
	n, err := layer.Read(got)
	if !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("Read error = %v, want ErrWouldBlock", err)
	}
	if n != len(plaintext) {
		t.Fatalf("n = %d, want %d (progress must still be reported)", n, len(plaintext))
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("bytes actually read must still be decrypted: got %q, want %q", got, plaintext)
	}
	if !Retryable(err) {
		t.Fatalf("Retryable(err) = false, want true")
	}
}

// pipeConn is a minimal io.ReadWriter backed by independent read/write
// buffers, enough to exercise a Layer stack without a real socket.
type pipeConn struct {
	r bytes.Reader
	w bytes.Buffer
}

func newPipeConn(preloaded []byte) *pipeConn {
	c := &pipeConn{}
	c.r = *bytes.NewReader(preloaded)
	return c
}

func (c *pipeConn) Read(p []byte) (int, error)  { return c.r.Read(p) }
func (c *pipeConn) Write(p []byte) (int, error) { return c.w.Write(p) }

func TestLeaf_LowestLayerIsInner(t *testing.T) {
	conn := newPipeConn(nil)
	l := Leaf(conn)
	if l.LowestLayer() != conn {
		t.Fatalf("Leaf.LowestLayer() must be the wrapped ReadWriter")
	}
}

func TestLowestLayer_WalksStack(t *testing.T) {
	conn := newPipeConn([]byte("abc"))
	base := Leaf(conn)
	dbg, err := NewDebugLayer(base, io.Discard)
	if err != nil {
		t.Fatalf("NewDebugLayer: %v", err)
	}
	if LowestLayer(dbg) != conn {
		t.Fatalf("LowestLayer must walk through to conn")
	}
}

func TestNewDebugLayer_RejectsNonPositiveWidth(t *testing.T) {
	conn := newPipeConn(nil)
	if _, err := NewDebugLayer(Leaf(conn), io.Discard, WithWidth(0)); err == nil {
		t.Fatalf("want error for width <= 0")
	}
}

func TestDebugLayer_HexDumpFormatsFullLine(t *testing.T) {
	conn := newPipeConn(nil)
	var sink bytes.Buffer
	dbg, err := NewDebugLayer(Leaf(conn), &sink, WithWidth(4))
	if err != nil {
		t.Fatalf("NewDebugLayer: %v", err)
	}
	if _, err := dbg.Write([]byte{0x41, 0x42, 0x0a, 0xff}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := sink.String()
	if !strings.Contains(got, "41 42 0a ff") {
		t.Fatalf("missing hex columns, got %q", got)
	}
	if !strings.Contains(got, "AB..") {
		t.Fatalf("missing printable gutter, got %q", got)
	}
	if !bytes.Equal(conn.w.Bytes(), []byte{0x41, 0x42, 0x0a, 0xff}) {
		t.Fatalf("DebugLayer must pass bytes through unchanged")
	}
}

func TestDebugLayer_FlushEmitsPartialLine(t *testing.T) {
	conn := newPipeConn(nil)
	var sink bytes.Buffer
	dbg, _ := NewDebugLayer(Leaf(conn), &sink, WithWidth(8))
	_, _ = dbg.Write([]byte{0x41})
	if sink.Len() != 0 {
		t.Fatalf("partial line must not be emitted before Flush")
	}
	dbg.Flush()
	if !strings.Contains(sink.String(), "41") || !strings.Contains(sink.String(), "A") {
		t.Fatalf("Flush must emit the pending partial line, got %q", sink.String())
	}
}

func TestDebugLayer_TextMode(t *testing.T) {
	conn := newPipeConn(nil)
	var sink bytes.Buffer
	dbg, _ := NewDebugLayer(Leaf(conn), &sink, WithMode(Text), WithName("conn"))
	_, _ = dbg.Write([]byte("hello"))
	got := sink.String()
	if got != "hello" {
		t.Fatalf("text mode must pass through raw bytes with no annotation, got %q", got)
	}
}

func TestCFB8_RoundTrip(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("rand: %v", err)
	}
	if _, err := rand.Read(iv); err != nil {
		t.Fatalf("rand: %v", err)
	}
	plaintext := []byte("the quick brown fox jumps over the lazy dog, 53 bytes")

	encBlock, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	enc := NewCFB8Encryptor(encBlock, iv)
	ciphertext := make([]byte, len(plaintext))
	enc.XORKeyStream(ciphertext, plaintext)

	decBlock, _ := aes.NewCipher(key)
	dec := NewCFB8Decryptor(decBlock, iv)
	got := make([]byte, len(ciphertext))
	dec.XORKeyStream(got, ciphertext)

	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestCFB8_StreamingMatchesOneShot(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	block1, _ := aes.NewCipher(key)
	block2, _ := aes.NewCipher(key)
	plaintext := []byte("streamed one byte at a time across many calls")

	oneShot := NewCFB8Encryptor(block1, iv)
	want := make([]byte, len(plaintext))
	oneShot.XORKeyStream(want, plaintext)

	streamed := NewCFB8Encryptor(block2, iv)
	got := make([]byte, len(plaintext))
	for i := range plaintext {
		streamed.XORKeyStream(got[i:i+1], plaintext[i:i+1])
	}

	if !bytes.Equal(got, want) {
		t.Fatalf("streamed encryption must match one-shot encryption")
	}
}

func TestCipherLayer_RoundTrip(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)

	conn := newPipeConn(nil)
	writerBlock, _ := aes.NewCipher(key)
	writer := NewCipherLayer(Leaf(conn), NewCFB8Encryptor(writerBlock, iv), NewCFB8Decryptor(writerBlock, iv))

	plaintext := []byte("hello, encrypted world")
	n, err := writer.Write(plaintext)
	if err != nil || n != len(plaintext) {
		t.Fatalf("Write() = (%d, %v), want (%d, nil)", n, err, len(plaintext))
	}

	readerConn := newPipeConn(conn.w.Bytes())
	readerBlock, _ := aes.NewCipher(key)
	reader := NewCipherLayer(Leaf(readerConn), NewCFB8Encryptor(readerBlock, iv), NewCFB8Decryptor(readerBlock, iv))

	got := make([]byte, len(plaintext))
	rn, err := reader.Read(got)
	if err != nil || rn != len(plaintext) {
		t.Fatalf("Read() = (%d, %v), want (%d, nil)", rn, err, len(plaintext))
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("got %q, want %q", got, plaintext)
	}
}
