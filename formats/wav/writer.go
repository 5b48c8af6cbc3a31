// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/pamiq/recorder-go/utils"
)

// Writer streams interleaved float32 frames into a 16-bit PCM WAV file.
// The RIFF headers are finalized by Close; a Writer that is never closed
// leaves an unreadable file behind.
type Writer struct {
	f   *os.File
	enc *gowav.Encoder
	buf *goaudio.IntBuffer
}

// Create opens a WAV writer at path configured for sampleRate Hz and the
// given channel count.
func Create(path string, sampleRate, channels int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Writer{
		f:   f,
		enc: gowav.NewEncoder(f, sampleRate, 16, channels, 1),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
		},
	}, nil
}

// WriteFloats converts samples to 16-bit PCM and appends them. samples is
// interleaved and its length must be a multiple of the channel count.
func (w *Writer) WriteFloats(samples []float32) error {
	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]

	for i, s := range samples {
		w.buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close finalizes the RIFF headers and closes the file.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("%w", err)
	}

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
