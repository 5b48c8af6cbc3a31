// SPDX-License-Identifier: EPL-2.0

package video

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

const (
	avifHasIndex  = 0x00000010
	aviifKeyframe = 0x00000010
)

// aviWriter streams motion-JPEG frames into an AVI/RIFF container with a
// single video stream. Header size fields are back-patched by close.
type aviWriter struct {
	f      *os.File
	width  int
	height int

	frames    uint32
	moviBytes uint32 // bytes inside the movi list after its fourcc
	index     []byte // accumulated idx1 entries

	riffSizeOffset  int64
	totalFramesOff  int64
	streamLengthOff int64
	moviSizeOffset  int64
}

// newAVIWriter creates the file and writes all fixed headers. fps is in
// frames per second.
func newAVIWriter(path string, fps float64, width, height int) (*aviWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w := &aviWriter{f: f, width: width, height: height}

	if err := w.writeHeaders(fps); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}

	return w, nil
}

func (w *aviWriter) writeHeaders(fps float64) error {
	var buf []byte

	le32 := binary.LittleEndian.AppendUint32
	le16 := binary.LittleEndian.AppendUint16

	// RIFF header; the total size is patched on close.
	buf = append(buf, "RIFF"...)
	w.riffSizeOffset = int64(len(buf))
	buf = le32(buf, 0)
	buf = append(buf, "AVI "...)

	// LIST hdrl: avih main header plus one strl stream list. Everything
	// inside is fixed-size, so the list sizes are constants.
	buf = append(buf, "LIST"...)
	buf = le32(buf, 192)
	buf = append(buf, "hdrl"...)

	buf = append(buf, "avih"...)
	buf = le32(buf, 56)
	buf = le32(buf, uint32(math.Round(1e6/fps))) // microseconds per frame
	buf = le32(buf, 0)                           // max bytes per second
	buf = le32(buf, 0)                           // padding granularity
	buf = le32(buf, avifHasIndex)
	w.totalFramesOff = int64(len(buf))
	buf = le32(buf, 0) // total frames, patched on close
	buf = le32(buf, 0) // initial frames
	buf = le32(buf, 1) // stream count
	buf = le32(buf, 0) // suggested buffer size
	buf = le32(buf, uint32(w.width))
	buf = le32(buf, uint32(w.height))
	for range 4 {
		buf = le32(buf, 0) // reserved
	}

	buf = append(buf, "LIST"...)
	buf = le32(buf, 116)
	buf = append(buf, "strl"...)

	buf = append(buf, "strh"...)
	buf = le32(buf, 56)
	buf = append(buf, "vids"...)
	buf = append(buf, "MJPG"...)
	buf = le32(buf, 0)    // flags
	buf = le16(buf, 0)    // priority
	buf = le16(buf, 0)    // language
	buf = le32(buf, 0)    // initial frames
	buf = le32(buf, 1000) // scale
	buf = le32(buf, uint32(math.Round(fps*1000))) // rate; fps = rate/scale
	buf = le32(buf, 0)                            // start
	w.streamLengthOff = int64(len(buf))
	buf = le32(buf, 0)          // length in frames, patched on close
	buf = le32(buf, 0)          // suggested buffer size
	buf = le32(buf, 0xffffffff) // quality: default
	buf = le32(buf, 0)          // sample size
	buf = le16(buf, 0)          // rcFrame left
	buf = le16(buf, 0)          // rcFrame top
	buf = le16(buf, uint16(w.width))
	buf = le16(buf, uint16(w.height))

	// strf: BITMAPINFOHEADER for the MJPG stream.
	buf = append(buf, "strf"...)
	buf = le32(buf, 40)
	buf = le32(buf, 40) // header size
	buf = le32(buf, uint32(w.width))
	buf = le32(buf, uint32(w.height))
	buf = le16(buf, 1)  // planes
	buf = le16(buf, 24) // bits per pixel
	buf = append(buf, "MJPG"...)
	buf = le32(buf, uint32(w.width*w.height*3)) // image size
	buf = le32(buf, 0)                          // x pixels per meter
	buf = le32(buf, 0)                          // y pixels per meter
	buf = le32(buf, 0)                          // colors used
	buf = le32(buf, 0)                          // colors important

	// LIST movi: frame chunks follow, size patched on close.
	buf = append(buf, "LIST"...)
	w.moviSizeOffset = int64(len(buf))
	buf = le32(buf, 0)
	buf = append(buf, "movi"...)
	w.moviBytes = 4

	if _, err := w.f.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// writeFrame appends one encoded JPEG as a 00dc chunk and records its
// index entry.
func (w *aviWriter) writeFrame(jpeg []byte) error {
	var chunk []byte
	chunk = append(chunk, "00dc"...)
	chunk = binary.LittleEndian.AppendUint32(chunk, uint32(len(jpeg)))
	chunk = append(chunk, jpeg...)
	if len(jpeg)%2 == 1 {
		chunk = append(chunk, 0) // RIFF chunks are word-aligned
	}

	if _, err := w.f.Write(chunk); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Index offsets are relative to the "movi" fourcc.
	w.index = append(w.index, "00dc"...)
	w.index = binary.LittleEndian.AppendUint32(w.index, aviifKeyframe)
	w.index = binary.LittleEndian.AppendUint32(w.index, w.moviBytes)
	w.index = binary.LittleEndian.AppendUint32(w.index, uint32(len(jpeg)))

	w.moviBytes += uint32(len(chunk))
	w.frames++

	return nil
}

// close writes the idx1 chunk, patches the deferred size fields and
// closes the file.
func (w *aviWriter) close() error {
	var idx []byte
	idx = append(idx, "idx1"...)
	idx = binary.LittleEndian.AppendUint32(idx, uint32(len(w.index)))
	idx = append(idx, w.index...)

	if _, err := w.f.Write(idx); err != nil {
		w.f.Close()
		return fmt.Errorf("%w", err)
	}

	end, err := w.f.Seek(0, 1)
	if err != nil {
		w.f.Close()
		return fmt.Errorf("%w", err)
	}

	patches := []struct {
		off int64
		val uint32
	}{
		{w.riffSizeOffset, uint32(end - 8)},
		{w.totalFramesOff, w.frames},
		{w.streamLengthOff, w.frames},
		{w.moviSizeOffset, w.moviBytes},
	}

	var scratch [4]byte
	for _, p := range patches {
		binary.LittleEndian.PutUint32(scratch[:], p.val)
		if _, err := w.f.WriteAt(scratch[:], p.off); err != nil {
			w.f.Close()
			return fmt.Errorf("%w", err)
		}
	}

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
