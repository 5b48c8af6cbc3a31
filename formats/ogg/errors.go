// SPDX-License-Identifier: EPL-2.0

package ogg

import "errors"

var (
	// ErrVorbisEncoding reports that Ogg Vorbis output was requested.
	// The ".ogg" extension resolves to the Vorbis subtype, but no Vorbis
	// encoder exists for Go; only Opus-in-Ogg can be written.
	ErrVorbisEncoding = errors.New("ogg vorbis encoding is not supported, use .opus instead")
)
