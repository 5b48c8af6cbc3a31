// SPDX-License-Identifier: EPL-2.0

package caf_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pamiq/recorder-go/formats/caf"
)

func TestCreate_UnsupportedChannelLayout(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{3, 6} {
		_, err := caf.Create(filepath.Join(t.TempDir(), "out.m4a"), 44100, channels)
		if !errors.Is(err, caf.ErrChannelLayout) {
			t.Errorf("channels %d: expected ErrChannelLayout, got %v", channels, err)
		}
	}
}

func TestWriter_FileStructure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.m4a")

	w, err := caf.Create(path, 44100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One full packet of 4096 frames plus a 904-frame remainder.
	if err := w.WriteFloats(make([]float32, 5000*2)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("caff\x00\x01\x00\x00")) {
		t.Fatal("expected caff header with version 1")
	}

	descAt := bytes.Index(data, []byte("desc"))
	if descAt < 0 {
		t.Fatal("expected desc chunk")
	}

	// desc body: size, float64 sample rate, format id.
	rate := math.Float64frombits(binary.BigEndian.Uint64(data[descAt+12:]))
	if rate != 44100 {
		t.Errorf("expected sample rate 44100, got %g", rate)
	}

	if !bytes.Equal(data[descAt+20:descAt+24], []byte("alac")) {
		t.Error("expected alac format id in desc chunk")
	}

	paktAt := bytes.Index(data, []byte("pakt"))
	if paktAt < 0 {
		t.Fatal("expected pakt chunk")
	}

	numPackets := binary.BigEndian.Uint64(data[paktAt+12:])
	if numPackets != 2 {
		t.Errorf("expected 2 packets, got %d", numPackets)
	}

	validFrames := binary.BigEndian.Uint64(data[paktAt+20:])
	if validFrames != 5000 {
		t.Errorf("expected 5000 valid frames, got %d", validFrames)
	}
}

// The data chunk size placeholder must be patched on close.
func TestWriter_PatchesDataSize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.alac")

	w, err := caf.Create(path, 16000, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := w.WriteFloats(make([]float32, 4096)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dataAt := bytes.Index(data, []byte("data"))
	if dataAt < 0 {
		t.Fatal("expected data chunk")
	}

	size := binary.BigEndian.Uint64(data[dataAt+4:])
	if size == 0 {
		t.Error("expected data chunk size to be patched")
	}

	// Size covers the edit count and the ALAC payload up to the packet
	// table that follows.
	paktAt := bytes.Index(data, []byte("pakt"))
	if want := uint64(paktAt - (dataAt + 12)); size != want {
		t.Errorf("expected data size %d, got %d", want, size)
	}
}
