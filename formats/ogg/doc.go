// SPDX-License-Identifier: EPL-2.0

// Package ogg writes streamed audio into Ogg containers as Opus packets.
//
// This package encodes with gopkg.in/hraban/opus.v2 (libopus bindings)
// and muxes pages with the pion Ogg writer. Incoming samples are
// re-chunked into the fixed 20 ms frames the codec requires; sample
// counts therefore survive a roundtrip only up to the final frame's
// zero padding.
//
// # Writing Ogg Opus Files
//
//	w, err := ogg.Create("output.opus", 48000, 2)
//	if err != nil {
//	    // Handle error
//	}
//	err = w.WriteFloats(samples) // interleaved float32 in [-1, 1]
//	err = w.Close()
//
// Opus restricts sample rates to 8, 12, 16, 24 and 48 kHz and channel
// counts to mono or stereo; Create surfaces the codec's rejection for
// anything else.
//
// Ogg Vorbis cannot be written: the ".ogg" mapping exists for format
// resolution, but opening it fails with ErrVorbisEncoding.
package ogg
