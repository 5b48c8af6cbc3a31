// SPDX-License-Identifier: EPL-2.0

// Package mp3 writes streamed audio into MPEG-1 Layer III files.
//
// This package uses github.com/braheezy/shine-mp3, a pure Go port of the
// shine fixed-point encoder, so no system codec is needed. Create accepts
// the MPEG-1 sample rates (32, 44.1, 48 kHz) and their MPEG-2 halves,
// mono or stereo; anything else is rejected up front.
//
// # Writing MP3 Files
//
//	w, err := mp3.Create("output.mp3", 44100, 2)
//	if err != nil {
//	    // Handle error
//	}
//	err = w.WriteFloats(samples) // interleaved float32 in [-1, 1]
//	err = w.Close()
//
// The codec operates on 1152-frame granules; trailing samples shorter
// than a granule are padded by the encoder. Sample counts therefore
// survive a roundtrip only approximately, which matches lossy MP3
// semantics in general.
package mp3
