// SPDX-License-Identifier: EPL-2.0

// Package audio records streamed float32 sample buffers to audio files.
//
// A Recorder is bound to one destination file; the file extension selects
// the container format and codec subtype:
//
//	.wav             WAV  / PCM 16-bit
//	.flac            FLAC / PCM 16-bit
//	.ogg             Ogg  / Vorbis
//	.opus            Ogg  / Opus
//	.m4a .mov .alac  CAF  / ALAC 16-bit
//	.mp3             MP3  / MPEG Layer III
//
// # Buffers
//
// Write accepts a Buffer, built either from a flat mono slice or from a
// frames×channels grid:
//
//	rec.Write(audio.Mono(samples))        // channels must be 1
//	rec.Write(audio.Frames(frames))       // each row one frame, width = channels
//
// Sample values are expected in [-1, 1] but are not clamped or rejected;
// dimensionality is validated strictly on every write.
//
// # Errors
//
// Construction fails with *UnsupportedFormatError for unknown extensions
// and *OpenError when the codec rejects the open request. Per-write shape
// failures (*InvalidShapeError, *ChannelMismatchError) leave the recorder
// open and usable. Writing after Close fails with recorder.ErrClosed.
//
// # Encoder Backends
//
// The container writers live in the formats subpackages (formats/wav,
// formats/flac, formats/ogg, formats/caf, formats/mp3). They are opened
// through a thin internal interface; this package only validates shapes
// and forwards interleaved frames. Ogg Vorbis is the one resolved pair
// without an encoder: no Vorbis encoder exists in the Go ecosystem, so
// opening a ".ogg" recorder fails with *OpenError wrapping
// ogg.ErrVorbisEncoding.
package audio
