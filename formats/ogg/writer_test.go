// SPDX-License-Identifier: EPL-2.0

package ogg_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pamiq/recorder-go/formats/ogg"
)

func TestCreate_RejectsUnsupportedRate(t *testing.T) {
	t.Parallel()

	// Opus only accepts 8, 12, 16, 24 and 48 kHz.
	_, err := ogg.Create(filepath.Join(t.TempDir(), "out.opus"), 44100, 1)
	if err == nil {
		t.Fatal("expected an error for a 44.1 kHz Opus encoder")
	}
}

func TestWriter_ProducesOggStream(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.opus")

	w, err := ogg.Create(path, 16000, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three full 20 ms frames at 16 kHz, written in uneven chunks.
	for _, n := range []int{500, 300, 160} {
		if err := w.WriteFloats(make([]float32, n)); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("OggS")) {
		t.Error("expected an Ogg page header")
	}

	if !bytes.Contains(data, []byte("OpusHead")) {
		t.Error("expected an Opus identification header")
	}
}

// A trailing partial frame must be padded and flushed by Close rather
// than dropped.
func TestWriter_PadsFinalFrame(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.opus")

	w, err := ogg.Create(path, 48000, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Half a 20 ms frame.
	if err := w.WriteFloats(make([]float32, 480*2)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Headers alone are two small pages; a flushed audio packet pushes
	// the file past them.
	if info.Size() == 0 {
		t.Error("expected a non-empty file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := bytes.Count(data, []byte("OggS")); got < 2 {
		t.Errorf("expected at least 2 Ogg pages, got %d", got)
	}
}
