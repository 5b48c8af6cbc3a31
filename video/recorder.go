// SPDX-License-Identifier: EPL-2.0

package video

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pamiq/recorder-go"
)

// Recorder writes a sequence of images as a motion-JPEG video file. It
// implements the recorder.Recorder contract for image.Image payloads.
type Recorder struct {
	path   string
	fps    float64
	width  int
	height int

	w       *aviWriter
	closed  bool
	cleanup runtime.Cleanup
}

var _ recorder.Recorder[image.Image] = (*Recorder)(nil)

// New creates a video recorder writing to path. The container is chosen
// from the file extension; only ".avi" is supported. Every frame passed
// to Write must have exactly width x height bounds.
func New(path string, fps float64, width, height int) (*Recorder, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrInvalidFrameRate, fps)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrInvalidGeometry, width, height)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if strings.ToLower(ext) != "avi" {
		return nil, &UnsupportedFormatError{Ext: ext}
	}

	w, err := newAVIWriter(path, fps, width, height)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	r := &Recorder{
		path:   path,
		fps:    fps,
		width:  width,
		height: height,
		w:      w,
	}

	// Finalize the container if the recorder is abandoned without Close.
	r.cleanup = runtime.AddCleanup(r, func(w *aviWriter) {
		w.close()
	}, w)

	return r, nil
}

// Path returns the output file path.
func (r *Recorder) Path() string { return r.path }

// FPS returns the configured frame rate.
func (r *Recorder) FPS() float64 { return r.fps }

// Width returns the configured frame width in pixels.
func (r *Recorder) Width() int { return r.width }

// Height returns the configured frame height in pixels.
func (r *Recorder) Height() int { return r.height }

// Write encodes one frame as JPEG and appends it to the video stream.
func (r *Recorder) Write(frame image.Image) error {
	if r.closed {
		return recorder.ErrClosed
	}

	b := frame.Bounds()
	if b.Dx() != r.width || b.Dy() != r.height {
		return &FrameSizeError{
			WantWidth:  r.width,
			WantHeight: r.height,
			GotWidth:   b.Dx(),
			GotHeight:  b.Dy(),
		}
	}

	var data bytes.Buffer
	if err := jpeg.Encode(&data, frame, nil); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.w.frames, err)
	}

	if err := r.w.writeFrame(data.Bytes()); err != nil {
		return fmt.Errorf("write frame %d: %w", r.w.frames, err)
	}

	return nil
}

// Close finalizes the container and releases the file. Calling Close
// again is a no-op.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}

	r.closed = true
	r.cleanup.Stop()

	if err := r.w.close(); err != nil {
		return fmt.Errorf("close container: %w", err)
	}

	return nil
}
