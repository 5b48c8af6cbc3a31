// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/pamiq/recorder-go"
)

// Recorder streams float32 sample buffers into an audio container on disk.
// The destination extension selects the container and codec, the encoder
// is opened synchronously during New, and every Write appends frames in
// call order until Close finalizes the file.
//
// Recorder performs no internal locking; a single instance must not be
// used from multiple goroutines without external synchronization.
type Recorder struct {
	path       string
	sampleRate int
	channels   int
	format     Format
	subtype    Subtype

	enc     encoder
	closed  bool
	cleanup runtime.Cleanup
}

var _ recorder.Recorder[Buffer] = (*Recorder)(nil)

// New opens an audio recorder writing to path. The file extension picks
// the container and codec (see Resolve), sampleRate is in Hz and channels
// is the number of interleaved channels every written buffer must match.
//
// Construction is atomic: if the extension does not resolve or the
// encoder cannot be opened, no file handle is left behind and no Recorder
// is returned. Encoder open failures are wrapped in *OpenError.
func New(path string, sampleRate, channels int) (*Recorder, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidChannels, channels)
	}

	format, subtype, err := Resolve(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	enc, err := openEncoder(path, format, subtype, sampleRate, channels)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	r := &Recorder{
		path:       path,
		sampleRate: sampleRate,
		channels:   channels,
		format:     format,
		subtype:    subtype,
		enc:        enc,
	}

	// Last-resort finalization for abandoned recorders. Close stops it;
	// callers should still close explicitly or use recorder.Use.
	r.cleanup = runtime.AddCleanup(r, func(enc encoder) {
		enc.Close()
	}, enc)

	return r, nil
}

// Path returns the destination file path.
func (r *Recorder) Path() string { return r.path }

// SampleRate returns the configured sample rate in Hz.
func (r *Recorder) SampleRate() int { return r.sampleRate }

// Channels returns the configured channel count.
func (r *Recorder) Channels() int { return r.channels }

// Format returns the resolved container format.
func (r *Recorder) Format() Format { return r.format }

// Subtype returns the resolved codec subtype.
func (r *Recorder) Subtype() Subtype { return r.subtype }

// Write validates buf against the configured channel count and forwards
// its frames to the encoder. Successive writes concatenate contiguously.
//
// Validation failures (*InvalidShapeError, *ChannelMismatchError) are
// side-effect free and leave the recorder usable. Writing after Close
// fails with recorder.ErrClosed. Encoder I/O failures are surfaced
// wrapped, never retried.
func (r *Recorder) Write(buf Buffer) error {
	if r.closed {
		return recorder.ErrClosed
	}

	samples, err := buf.interleave(r.channels)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return nil
	}

	if err := r.enc.WriteFloats(samples); err != nil {
		return fmt.Errorf("write %d frames: %w", buf.Len(), err)
	}

	return nil
}

// Close flushes and finalizes the encoder. Only the first call performs
// work; later calls return nil even if the first close reported an error.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.cleanup.Stop()

	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}

	return nil
}
