// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framing

import (
	"bytes"
	"io"

	"code.hybscloud.com/mcwire/checked"
	"code.hybscloud.com/mcwire/varint"
)

// Write writes one framed message to w: a varint length prefix followed by
// body, as a single logical operation. Bodies whose size does not fit an
// unsigned 32-bit varint are rejected before anything is written, mirroring
// the teacher's writeStream guard against oversize payloads.
func Write(w io.Writer, body []byte) (int, error) {
	bodyLen, ok := checked.Cast[uint32](len(body))
	if !ok {
		return 0, ErrValueTooLarge
	}

	var header bytes.Buffer
	if _, err := varint.Encode(uint64(bodyLen), &header); err != nil {
		return 0, err
	}

	hn, err := w.Write(header.Bytes())
	if err != nil {
		return hn, err
	}
	bn, err := w.Write(body)
	return hn + bn, err
}
