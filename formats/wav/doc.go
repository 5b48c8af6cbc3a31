// SPDX-License-Identifier: EPL-2.0

// Package wav writes streamed audio into 16-bit PCM WAV files.
//
// This package wraps the github.com/go-audio/wav encoder behind the small
// writer surface the audio recorder expects.
//
// # Writing WAV Files
//
//	w, err := wav.Create("output.wav", 44100, 2)
//	if err != nil {
//	    // Handle error
//	}
//	err = w.WriteFloats(samples) // interleaved float32 in [-1, 1]
//	err = w.Close()              // finalizes RIFF headers
//
// Samples are converted to 16-bit PCM with clamping at the full-scale
// bounds; dimensionality is the caller's responsibility (the length of
// every WriteFloats slice must be a multiple of the channel count).
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: actual audio samples
//
// The chunk sizes are back-patched when Close is called, which is why the
// destination must be a regular seekable file.
package wav
