// SPDX-License-Identifier: EPL-2.0

// Package caf writes streamed audio into Core Audio Format files carrying
// 16-bit ALAC, the container/codec pair behind the .m4a, .mov and .alac
// recorder extensions.
//
// The container is written directly: a caff file header followed by desc
// (audio description), kuki (ALAC magic cookie), data and pakt (packet
// table) chunks, all big-endian. ALAC packets use the codec's escape
// mode, which stores samples uncompressed inside a valid lossless ALAC
// bitstream; github.com/icza/bitio does the bit packing.
//
// # Writing CAF Files
//
//	w, err := caf.Create("output.m4a", 44100, 2)
//	if err != nil {
//	    // Handle error
//	}
//	err = w.WriteFloats(samples) // interleaved float32 in [-1, 1]
//	err = w.Close()
//
// Samples are grouped into 4096-frame packets; Close writes the packet
// table and back-patches the data chunk size, so the destination must be
// a regular seekable file. Mono and stereo layouts are supported.
package caf
