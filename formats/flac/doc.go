// SPDX-License-Identifier: EPL-2.0

// Package flac writes streamed audio into FLAC files.
//
// This package uses github.com/mewkiz/flac to encode 16-bit samples. The
// encoder stores each block with verbatim prediction: the stream is valid,
// lossless FLAC, traded toward encoding simplicity rather than maximum
// compression.
//
// # Writing FLAC Files
//
//	w, err := flac.Create("output.flac", 48000, 2)
//	if err != nil {
//	    // Handle error
//	}
//	err = w.WriteFloats(samples) // interleaved float32 in [-1, 1]
//	err = w.Close()
//
// Incoming samples are split into blocks of at most 4096 frames, one
// subframe per channel. Close finalizes the stream and must be called for
// the file to carry a correct stream info block.
package flac
