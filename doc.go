// SPDX-License-Identifier: EPL-2.0

// Package recorder provides typed, file-backed data recorders for Go applications.
//
// The package defines a single generic lifecycle contract, Recorder[T], and
// ships concrete implementations that stream data of a given payload type
// into standard container files:
//
//   - audio streams into WAV, FLAC, Ogg, CAF and MP3 containers via audio
//   - tabular rows into CSV files via table
//   - video frames into motion-JPEG AVI files via video
//
// # Lifecycle Contract
//
// Every recorder honors the same discipline: construction opens the
// destination file synchronously (no partially-open recorder is ever
// observable), Write appends payloads in call order, and Close finalizes
// the file exactly once. Close is idempotent and writing after Close
// fails with ErrClosed.
//
// # Quick Start
//
// Recording a stereo audio stream:
//
//	rec, err := audio.New("take.wav", 44100, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rec.Close()
//
//	// frames is [][]float32, one row per frame, samples in [-1, 1]
//	if err := rec.Write(audio.Frames(frames)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scoped Use
//
// Use closes the recorder on every exit path, including panics:
//
//	err = recorder.Use(rec, func(r recorder.Recorder[audio.Buffer]) error {
//	    return r.Write(audio.Mono(samples))
//	})
//
// Recorders also register a best-effort runtime cleanup that closes the
// underlying handle if the owner never called Close. Do not rely on it:
// cleanup timing is up to the garbage collector. Close explicitly or use
// recorder.Use.
//
// # Audio Formats
//
// The destination extension selects the container and codec:
//
//	.wav             WAV  / PCM 16-bit
//	.flac            FLAC / PCM 16-bit
//	.ogg             Ogg  / Vorbis
//	.opus            Ogg  / Opus
//	.m4a .mov .alac  CAF  / ALAC 16-bit
//	.mp3             MP3  / MPEG Layer III
//
// Any other extension is rejected at construction time. The .ogg mapping
// resolves but cannot be opened: no Vorbis encoder is available, so
// construction fails and .opus should be used instead. See the audio
// subpackage for the error taxonomy and buffer shape rules.
//
// See the individual subpackages for more detailed documentation.
package recorder
