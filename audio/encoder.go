// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/pamiq/recorder-go/formats/caf"
	"github.com/pamiq/recorder-go/formats/flac"
	"github.com/pamiq/recorder-go/formats/mp3"
	"github.com/pamiq/recorder-go/formats/ogg"
	"github.com/pamiq/recorder-go/formats/wav"
)

// encoder is the thin surface the recorder needs from a format backend.
// Every formats subpackage writer satisfies it structurally.
type encoder interface {
	// WriteFloats appends interleaved float32 frames to the container.
	WriteFloats(samples []float32) error
	// Close flushes pending frames and finalizes the container.
	Close() error
}

// openEncoder opens the backend writer for a resolved (format, subtype)
// pair. The backend validates codec parameters itself; anything it
// rejects surfaces to the caller as an OpenError.
func openEncoder(path string, format Format, subtype Subtype, sampleRate, channels int) (encoder, error) {
	switch format {
	case FormatWAV:
		return wav.Create(path, sampleRate, channels)
	case FormatFLAC:
		return flac.Create(path, sampleRate, channels)
	case FormatOGG:
		if subtype == SubtypeOpus {
			return ogg.Create(path, sampleRate, channels)
		}
		return nil, ogg.ErrVorbisEncoding
	case FormatCAF:
		return caf.Create(path, sampleRate, channels)
	case FormatMP3:
		return mp3.Create(path, sampleRate, channels)
	default:
		return nil, fmt.Errorf("no encoder for format %q", format)
	}
}
