// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer is one chunk of float32 samples handed to Recorder.Write.
// Samples are expected in [-1, 1] but amplitude is never validated or
// clamped here; out-of-range values pass through to the codec untouched.
//
// A Buffer is either flat mono data (rank 1, built with Mono) or a
// rectangular frames×channels grid (rank 2, built with Frames). The zero
// Buffer has rank 0 and is rejected by Write.
type Buffer struct {
	rank int
	mono []float32
	grid [][]float32
}

// Mono wraps a flat sample slice as a rank-1 buffer. It is only writable
// to a recorder configured with a single channel.
func Mono(samples []float32) Buffer {
	return Buffer{rank: 1, mono: samples}
}

// Frames wraps a frames×channels grid as a rank-2 buffer. Each row is one
// frame: one sample per channel at a single time instant.
func Frames(frames [][]float32) Buffer {
	return Buffer{rank: 2, grid: frames}
}

// Rank reports the buffer's dimensionality: 1 for mono, 2 for a
// frames×channels grid, 0 for the zero Buffer.
func (b Buffer) Rank() int { return b.rank }

// Len reports the number of frames held by the buffer.
func (b Buffer) Len() int {
	switch b.rank {
	case 1:
		return len(b.mono)
	case 2:
		return len(b.grid)
	default:
		return 0
	}
}

// interleave validates the buffer shape against the configured channel
// count and returns the samples as one interleaved slice. Rank-1 data is
// returned as-is without copying.
func (b Buffer) interleave(channels int) ([]float32, error) {
	switch b.rank {
	case 1:
		if channels != 1 {
			return nil, &ChannelMismatchError{Want: channels, Got: 1, Mono: true}
		}
		return b.mono, nil

	case 2:
		for _, frame := range b.grid {
			if len(frame) != channels {
				return nil, &ChannelMismatchError{Want: channels, Got: len(frame)}
			}
		}

		out := make([]float32, 0, len(b.grid)*channels)
		for _, frame := range b.grid {
			out = append(out, frame...)
		}
		return out, nil

	default:
		return nil, &InvalidShapeError{Rank: b.rank}
	}
}
