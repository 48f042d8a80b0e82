// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// DecodeGzip reads one gzip-compressed NBT document from r, the on-disk
// form Minecraft uses for region-file chunks and player/level data (as
// opposed to the raw, uncompressed form the network protocol's login and
// play packets carry inline).
func DecodeGzip(r io.Reader) (*Node, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return Decode(gr)
}

// EncodeGzip writes root as a gzip-compressed NBT document to w.
func EncodeGzip(w io.Writer, root *Node) error {
	gw := gzip.NewWriter(w)
	if err := Encode(gw, root); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}
