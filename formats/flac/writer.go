// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"os"

	mewflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/pamiq/recorder-go/utils"
)

// blockFrames is the number of frames encoded per FLAC block. 4096 keeps
// the stream inside the FLAC subset for all supported sample rates.
const blockFrames = 4096

// Writer streams interleaved float32 frames into a FLAC file as 16-bit
// verbatim-predicted subframes.
type Writer struct {
	f          *os.File
	enc        *mewflac.Encoder
	sampleRate int
	channels   int
}

// Create opens a FLAC writer at path configured for sampleRate Hz and the
// given channel count. FLAC admits at most eight channels.
func Create(path string, sampleRate, channels int) (*Writer, error) {
	if channels > 8 {
		return nil, fmt.Errorf("%w, got %d", ErrTooManyChannels, channels)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  blockFrames,
		SampleRate:    uint32(sampleRate),
		NChannels:     uint8(channels),
		BitsPerSample: 16,
	}

	enc, err := mewflac.NewEncoder(f, info)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w", err)
	}

	return &Writer{
		f:          f,
		enc:        enc,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// WriteFloats converts samples to 16-bit PCM and appends them in blocks
// of at most blockFrames frames. samples is interleaved and its length
// must be a multiple of the channel count.
func (w *Writer) WriteFloats(samples []float32) error {
	frames := len(samples) / w.channels

	for start := 0; start < frames; start += blockFrames {
		end := min(start+blockFrames, frames)
		if err := w.writeBlock(samples, start, end); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeBlock(samples []float32, start, end int) error {
	n := end - start

	subframes := make([]*frame.Subframe, w.channels)
	for ch := range subframes {
		sub := &frame.Subframe{
			SubHeader: frame.SubHeader{
				Pred: frame.PredVerbatim,
			},
			Samples:  make([]int32, n),
			NSamples: n,
		}
		for i := range n {
			s := samples[(start+i)*w.channels+ch]
			sub.Samples[i] = int32(utils.Float32ToInt16(s))
		}
		subframes[ch] = sub
	}

	fr := &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: false,
			BlockSize:         uint16(n),
			SampleRate:        uint32(w.sampleRate),
			Channels:          frame.Channels(w.channels - 1),
			BitsPerSample:     16,
		},
		Subframes: subframes,
	}

	if err := w.enc.WriteFrame(fr); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close flushes the encoder and updates the stream info. The encoder
// owns the file handle and closes it itself; w.f is touched directly
// only when the encoder fails.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("%w", err)
	}

	return nil
}
