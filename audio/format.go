// SPDX-License-Identifier: EPL-2.0

package audio

import "strings"

// Format identifies the container written to disk.
type Format string

const (
	FormatWAV  Format = "WAV"
	FormatFLAC Format = "FLAC"
	FormatOGG  Format = "OGG"
	FormatCAF  Format = "CAF"
	FormatMP3  Format = "MP3"
)

// Subtype identifies the sample encoding inside a container.
type Subtype string

const (
	SubtypePCM16        Subtype = "PCM_16"
	SubtypeVorbis       Subtype = "VORBIS"
	SubtypeOpus         Subtype = "OPUS"
	SubtypeALAC16       Subtype = "ALAC_16"
	SubtypeMPEGLayerIII Subtype = "MPEG_LAYER_III"
)

// Resolve maps a file extension to its container format and codec subtype.
// The extension is normalized first: one leading dot is stripped and the
// result is lowercased, so ".WAV", "WAV" and "wav" all resolve the same way.
//
// Resolve is a pure lookup. It performs no I/O and does not check whether
// the matching encoder can actually be opened.
func Resolve(ext string) (Format, Subtype, error) {
	trimmed := strings.TrimPrefix(ext, ".")

	switch strings.ToLower(trimmed) {
	case "wav":
		return FormatWAV, SubtypePCM16, nil
	case "flac":
		return FormatFLAC, SubtypePCM16, nil
	case "ogg":
		return FormatOGG, SubtypeVorbis, nil
	case "opus":
		return FormatOGG, SubtypeOpus, nil
	case "m4a", "mov", "alac":
		return FormatCAF, SubtypeALAC16, nil
	case "mp3":
		return FormatMP3, SubtypeMPEGLayerIII, nil
	default:
		return "", "", &UnsupportedFormatError{Ext: trimmed}
	}
}
