// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framing

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zlib"

	"code.hybscloud.com/mcwire/checked"
	"code.hybscloud.com/mcwire/varint"
	"code.hybscloud.com/mcwire/wire"
)

// Compress writes the compression envelope for body into out: a varint
// declared-uncompressed-size header followed by a deflate stream. The
// header value is body's uncompressed length; if it overflows a signed
// 32-bit integer this is ErrSizeOverflow.
func Compress(body []byte, out *bytes.Buffer) error {
	bodyLen, ok := checked.Cast[int32](len(body))
	if !ok {
		return ErrSizeOverflow
	}
	if _, err := varint.Encode(uint64(bodyLen), out); err != nil {
		return err
	}
	zw := zlib.NewWriter(out)
	if _, err := zw.Write(body); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Decompress reads the compression envelope from in: a varint declared
// size followed either by a literal body (declared == 0) or a deflate
// stream that must inflate to exactly declared bytes.
//
// proceed is invoked with the declared size before any inflation happens;
// if it returns false, Decompress stops immediately — no body bytes are
// produced, no error is reported (the protocol's "below-threshold, literal
// body follows" case, left for the caller to read raw). On success, the
// returned suffix is the unconsumed remainder of in (always empty when
// proceed returned true and no error occurred).
func Decompress(in []byte, out *bytes.Buffer, proceed func(declared int32) bool) ([]byte, error) {
	u, n, err := varint.Decode(bytes.NewReader(in), varint.Width32)
	rest := wire.SuffixView(in, len(in)-n)
	if err != nil {
		return rest, err
	}
	declared := int32(u)
	if declared < 0 {
		return rest, ErrLengthNegative
	}
	if !proceed(declared) {
		return rest, nil
	}

	br := bytes.NewReader(rest)
	zr, err := zlib.NewReader(br)
	if err != nil {
		return rest, err
	}
	defer zr.Close()

	written, err := io.Copy(out, zr)
	if err != nil {
		return nil, err
	}

	// Every input byte must have been consumed by inflate; any bytes left
	// in br past the deflate stream's own footer are trailing padding.
	if br.Len() != 0 {
		return nil, ErrPadded
	}
	if written != int64(declared) {
		return nil, ErrWrongLength
	}
	return rest[len(rest):], nil
}

// gzipMagic is the two-byte gzip member header; its presence is what lets
// an inflate context opened with windowBits 15+32 (the convention the
// reference implementation's inflate_stream tests exercise) accept either
// a gzip member or a raw zlib stream without the caller choosing up front.
var gzipMagic = [2]byte{0x1f, 0x8b}

// InflateAutodetect reads a single compressed member from r — either a
// gzip member or a zlib stream, detected from the leading two bytes — and
// inflates it in full. This is the standalone inflate entry point used
// where the wire format isn't known to be one or the other ahead of time;
// the fixed-format envelope Decompress implements is for the packet
// compression threshold, which is always zlib.
func InflateAutodetect(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}

	var zr io.ReadCloser
	if len(peek) == 2 && peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1] {
		zr, err = gzip.NewReader(br)
	} else {
		zr, err = zlib.NewReader(br)
	}
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, zr); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
