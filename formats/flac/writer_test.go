// SPDX-License-Identifier: EPL-2.0

package flac_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	mewflac "github.com/mewkiz/flac"

	"github.com/pamiq/recorder-go/formats/flac"
)

func TestCreate_TooManyChannels(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.flac")

	_, err := flac.Create(path, 44100, 9)
	if !errors.Is(err, flac.ErrTooManyChannels) {
		t.Errorf("expected ErrTooManyChannels, got %v", err)
	}
}

// The encoder owns and closes the file handle itself; Close must not
// report an error on the happy path.
func TestWriter_CloseClean(t *testing.T) {
	t.Parallel()

	w, err := flac.Create(filepath.Join(t.TempDir(), "out.flac"), 44100, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := w.WriteFloats(make([]float32, 64)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("expected clean close, got %v", err)
	}
}

func TestWriter_LosslessRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.flac")

	w, err := flac.Create(path, 8000, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	samples := []float32{0, 0.25, -0.25, 1, -1}
	if err := w.WriteFloats(samples); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	stream, err := mewflac.ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	defer stream.Close()

	fr, err := stream.ParseNext()
	if err != nil {
		t.Fatalf("unexpected frame error: %v", err)
	}

	want := []int32{0, 8191, -8191, 32767, -32767}
	got := fr.Subframes[0].Samples

	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}

	for i, v := range want {
		if got[i] != v {
			t.Errorf("sample %d: expected %d, got %d", i, v, got[i])
		}
	}
}

// Writes beyond one block must split into multiple frames that decode to
// the original sample count.
func TestWriter_SplitsBlocks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.flac")

	w, err := flac.Create(path, 44100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const frames = 4096*2 + 100
	if err := w.WriteFloats(make([]float32, frames*2)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	stream, err := mewflac.ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	defer stream.Close()

	var blocks, total int
	for {
		fr, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected frame error: %v", err)
		}

		blocks++
		total += len(fr.Subframes[0].Samples)
	}

	if blocks != 3 {
		t.Errorf("expected 3 blocks, got %d", blocks)
	}

	if total != frames {
		t.Errorf("expected %d frames, got %d", frames, total)
	}
}
