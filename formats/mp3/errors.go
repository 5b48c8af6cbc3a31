// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrSampleRate rejects rates outside the MPEG-1/MPEG-2 Layer III
	// tables the shine encoder supports.
	ErrSampleRate = errors.New("mp3 supports 16, 22.05, 24, 32, 44.1 and 48 kHz only")

	// ErrChannelLayout rejects channel counts other than mono and stereo.
	ErrChannelLayout = errors.New("mp3 writer supports mono and stereo only")
)
