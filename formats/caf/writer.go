// SPDX-License-Identifier: EPL-2.0

package caf

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/pamiq/recorder-go/utils"
)

// Writer streams interleaved float32 frames into a Core Audio Format
// file carrying 16-bit ALAC. Chunk sizes and the packet table are
// finalized by Close; an unclosed Writer leaves an unreadable file.
type Writer struct {
	f          *os.File
	sampleRate int
	channels   int

	pending     []float32 // interleaved samples awaiting a full packet
	packetSizes []byte    // BER-encoded size of every emitted packet
	numPackets  int64
	validFrames int64
	dataBytes   int64 // payload bytes written after the edit count
	sizeOffset  int64 // file offset of the data chunk size field
}

// Create opens a CAF/ALAC writer at path configured for sampleRate Hz.
// ALAC escape coding here covers the mono and stereo element layouts;
// other channel counts are rejected.
func Create(path string, sampleRate, channels int) (*Writer, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w, got %d", ErrChannelLayout, channels)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w := &Writer{
		f:          f,
		sampleRate: sampleRate,
		channels:   channels,
	}

	if err := w.writeHeader(); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}

	return w, nil
}

// writeHeader emits the CAF file header, the audio description, the ALAC
// magic cookie and the opening of the data chunk.
func (w *Writer) writeHeader() error {
	var buf []byte

	// File header: type, version, flags.
	buf = append(buf, "caff"...)
	buf = binary.BigEndian.AppendUint16(buf, 1)
	buf = binary.BigEndian.AppendUint16(buf, 0)

	// Audio description chunk. Compressed formats leave bytesPerPacket
	// and bitsPerChannel at zero; the pakt chunk carries packet sizes.
	buf = append(buf, "desc"...)
	buf = binary.BigEndian.AppendUint64(buf, 32)
	buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(float64(w.sampleRate)))
	buf = append(buf, "alac"...)
	buf = binary.BigEndian.AppendUint32(buf, 1) // 16-bit source data
	buf = binary.BigEndian.AppendUint32(buf, 0) // bytes per packet
	buf = binary.BigEndian.AppendUint32(buf, alacFrameLength)
	buf = binary.BigEndian.AppendUint32(buf, uint32(w.channels))
	buf = binary.BigEndian.AppendUint32(buf, 0) // bits per channel

	// Magic cookie chunk.
	cookie := alacMagicCookie(w.sampleRate, w.channels)
	buf = append(buf, "kuki"...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(cookie)))
	buf = append(buf, cookie...)

	if _, err := w.f.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Data chunk: the size is unknown until Close, so remember where it
	// lives and back-patch it. The body starts with the edit count.
	off, err := w.f.Seek(0, 1)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	w.sizeOffset = off + 4

	var data []byte
	data = append(data, "data"...)
	data = binary.BigEndian.AppendUint64(data, 0) // patched on Close
	data = binary.BigEndian.AppendUint32(data, 0) // edit count

	if _, err := w.f.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFloats appends interleaved samples, emitting a packet for every
// completed group of 4096 frames. Leftover frames are carried until the
// next write or Close.
func (w *Writer) WriteFloats(samples []float32) error {
	w.pending = append(w.pending, samples...)

	need := alacFrameLength * w.channels
	for len(w.pending) >= need {
		if err := w.writePacket(w.pending[:need], alacFrameLength); err != nil {
			return err
		}
		w.pending = w.pending[:copy(w.pending, w.pending[need:])]
	}

	return nil
}

func (w *Writer) writePacket(pcm []float32, frames int) error {
	packet, err := encodeALACPacket(utils.AppendInt16(nil, pcm), frames, w.channels)
	if err != nil {
		return err
	}

	if _, err := w.f.Write(packet); err != nil {
		return fmt.Errorf("%w", err)
	}

	w.packetSizes = appendBERSize(w.packetSizes, int64(len(packet)))
	w.numPackets++
	w.validFrames += int64(frames)
	w.dataBytes += int64(len(packet))

	return nil
}

// Close emits a final short packet for any buffered frames, writes the
// packet table, patches the data chunk size and closes the file.
func (w *Writer) Close() error {
	if len(w.pending) > 0 {
		frames := len(w.pending) / w.channels
		if err := w.writePacket(w.pending, frames); err != nil {
			w.f.Close()
			return err
		}
		w.pending = nil
	}

	if err := w.writePacketTable(); err != nil {
		w.f.Close()
		return err
	}

	// Patch the data chunk size: edit count plus payload.
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(4+w.dataBytes))
	if _, err := w.f.WriteAt(size[:], w.sizeOffset); err != nil {
		w.f.Close()
		return fmt.Errorf("%w", err)
	}

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (w *Writer) writePacketTable() error {
	var buf []byte

	buf = append(buf, "pakt"...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(24+len(w.packetSizes)))
	buf = binary.BigEndian.AppendUint64(buf, uint64(w.numPackets))
	buf = binary.BigEndian.AppendUint64(buf, uint64(w.validFrames))
	buf = binary.BigEndian.AppendUint32(buf, 0) // priming frames
	buf = binary.BigEndian.AppendUint32(buf, 0) // remainder frames
	buf = append(buf, w.packetSizes...)

	if _, err := w.f.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
