// SPDX-License-Identifier: EPL-2.0

package caf

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/icza/bitio"
)

// ALAC bitstream element tags.
const (
	alacElemSCE = 0 // single channel element
	alacElemCPE = 3 // channel pair element
	alacElemEnd = 7
)

// alacFrameLength is the number of frames per ALAC packet, matching the
// frameLength advertised in the magic cookie.
const alacFrameLength = 4096

// alacMagicCookie builds the 24-byte ALACSpecificConfig stored in the
// CAF kuki chunk. The pb/mb/kb Rice parameters are the reference
// encoder's defaults; they are irrelevant to escape-coded packets but
// decoders expect sane values.
func alacMagicCookie(sampleRate, channels int) []byte {
	cookie := make([]byte, 24)

	binary.BigEndian.PutUint32(cookie[0:4], alacFrameLength)
	cookie[4] = 0  // compatible version
	cookie[5] = 16 // bit depth
	cookie[6] = 40 // pb
	cookie[7] = 10 // mb
	cookie[8] = 14 // kb
	cookie[9] = byte(channels)
	binary.BigEndian.PutUint16(cookie[10:12], 255) // maxRun
	binary.BigEndian.PutUint32(cookie[12:16], 0)   // maxFrameBytes (unknown)
	binary.BigEndian.PutUint32(cookie[16:20], 0)   // avgBitRate (unknown)
	binary.BigEndian.PutUint32(cookie[20:24], uint32(sampleRate))

	return cookie
}

// encodeALACPacket encodes frames of interleaved 16-bit samples as one
// ALAC packet in escape mode: the element headers mark the payload as
// uncompressed, so the samples are stored verbatim. The result is valid
// lossless ALAC, just without compression.
func encodeALACPacket(pcm []int16, frames, channels int) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	tag := alacElemSCE
	if channels == 2 {
		tag = alacElemCPE
	}

	partial := frames != alacFrameLength

	w.WriteBits(uint64(tag), 3)
	w.WriteBits(0, 4)  // element instance
	w.WriteBits(0, 12) // unused header bits
	if partial {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
	w.WriteBits(0, 2) // bytes shifted
	w.WriteBits(1, 1) // escape: uncompressed payload
	if partial {
		w.WriteBits(uint64(uint32(frames)), 32)
	}

	for _, s := range pcm[:frames*channels] {
		w.WriteBits(uint64(uint16(s)), 16)
	}

	w.WriteBits(alacElemEnd, 3)

	// Close pads the final byte with zero bits.
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf.Bytes(), nil
}

// appendBERSize appends n in the variable-length encoding the CAF packet
// table uses: big-endian 7-bit groups, all but the last with the high bit
// set.
func appendBERSize(dst []byte, n int64) []byte {
	if n == 0 {
		return append(dst, 0)
	}

	var groups [10]byte
	i := len(groups)
	for n > 0 {
		i--
		groups[i] = byte(n & 0x7f)
		n >>= 7
	}

	for j := i; j < len(groups)-1; j++ {
		dst = append(dst, groups[j]|0x80)
	}
	return append(dst, groups[len(groups)-1])
}
