// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"os"

	shine "github.com/braheezy/shine-mp3/pkg/mp3"

	"github.com/pamiq/recorder-go/utils"
)

// Writer streams interleaved float32 frames into an MPEG-1 Layer III
// file using the shine encoder.
type Writer struct {
	f   *os.File
	enc *shine.Encoder
	pcm []int16
}

// Create opens an MP3 writer at path configured for sampleRate Hz and
// the given channel count. MPEG Layer III constrains the usable sample
// rates (32, 44.1 and 48 kHz for MPEG-1; half those for MPEG-2); shine
// does not check them itself, so anything else is rejected here.
func Create(path string, sampleRate, channels int) (*Writer, error) {
	switch sampleRate {
	case 16000, 22050, 24000, 32000, 44100, 48000:
	default:
		return nil, fmt.Errorf("%w, got %d", ErrSampleRate, sampleRate)
	}

	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w, got %d", ErrChannelLayout, channels)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Writer{
		f:   f,
		enc: shine.NewEncoder(sampleRate, channels),
	}, nil
}

// WriteFloats converts samples to 16-bit PCM and feeds them to the
// encoder. samples is interleaved and its length must be a multiple of
// the channel count.
func (w *Writer) WriteFloats(samples []float32) error {
	w.pcm = utils.AppendInt16(w.pcm[:0], samples)

	if err := w.enc.Write(w.f, w.pcm); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close closes the output file. The encoder emits complete frames as it
// goes, so there is nothing further to flush.
func (w *Writer) Close() error {
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
