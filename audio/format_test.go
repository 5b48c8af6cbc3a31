// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"testing"

	"github.com/pamiq/recorder-go/audio"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext     string
		format  audio.Format
		subtype audio.Subtype
	}{
		{"wav", audio.FormatWAV, audio.SubtypePCM16},
		{".wav", audio.FormatWAV, audio.SubtypePCM16},
		{"WAV", audio.FormatWAV, audio.SubtypePCM16},
		{".WaV", audio.FormatWAV, audio.SubtypePCM16},
		{"flac", audio.FormatFLAC, audio.SubtypePCM16},
		{"ogg", audio.FormatOGG, audio.SubtypeVorbis},
		{"opus", audio.FormatOGG, audio.SubtypeOpus},
		{"m4a", audio.FormatCAF, audio.SubtypeALAC16},
		{"mov", audio.FormatCAF, audio.SubtypeALAC16},
		{"alac", audio.FormatCAF, audio.SubtypeALAC16},
		{".MP3", audio.FormatMP3, audio.SubtypeMPEGLayerIII},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			format, subtype, err := audio.Resolve(tt.ext)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if format != tt.format {
				t.Errorf("expected format %s, got %s", tt.format, format)
			}

			if subtype != tt.subtype {
				t.Errorf("expected subtype %s, got %s", tt.subtype, subtype)
			}
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{"xyz", ".xyz", "", ".", "wav.bak"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			_, _, err := audio.Resolve(ext)

			var ufe *audio.UnsupportedFormatError
			if !errors.As(err, &ufe) {
				t.Fatalf("expected UnsupportedFormatError, got %v", err)
			}
		})
	}
}

func TestResolve_ErrorKeepsOriginalCase(t *testing.T) {
	t.Parallel()

	_, _, err := audio.Resolve(".XyZ")

	var ufe *audio.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}

	if ufe.Ext != "XyZ" {
		t.Errorf("expected extension %q preserved, got %q", "XyZ", ufe.Ext)
	}
}
