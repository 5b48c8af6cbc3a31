// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSampleRate rejects non-positive sample rates at construction.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	// ErrInvalidChannels rejects non-positive channel counts at construction.
	ErrInvalidChannels = errors.New("channel count must be positive")
)

// UnsupportedFormatError reports an extension with no entry in the format
// table. Ext carries the extension as given, minus a leading dot.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("audio format %q is not supported or recognized", e.Ext)
}

// OpenError reports that the encoder for a resolved format could not be
// opened. The construction attempt is fatal; no recorder escapes.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open encoder for %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// InvalidShapeError reports a buffer whose rank is neither 1 (flat mono)
// nor 2 (frames×channels). The write is rejected before any encoder call;
// the recorder stays usable.
type InvalidShapeError struct {
	Rank int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("expected rank 1 or 2 sample buffer, got rank %d", e.Rank)
}

// ChannelMismatchError reports a buffer whose channel dimension disagrees
// with the recorder's configured channel count. Mono is set when flat
// rank-1 data was written to a multi-channel recorder.
type ChannelMismatchError struct {
	Want int
	Got  int
	Mono bool
}

func (e *ChannelMismatchError) Error() string {
	if e.Mono {
		return fmt.Sprintf("expected %d channels, but got mono data", e.Want)
	}
	return fmt.Sprintf("expected %d channels, got data with %d", e.Want, e.Got)
}
