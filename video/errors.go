// SPDX-License-Identifier: EPL-2.0

package video

import (
	"errors"
	"fmt"
)

// ErrInvalidFrameRate is returned when the frame rate is zero or negative.
var ErrInvalidFrameRate = errors.New("frame rate must be positive")

// ErrInvalidGeometry is returned when width or height is zero or negative.
var ErrInvalidGeometry = errors.New("frame width and height must be positive")

// UnsupportedFormatError is returned when the file extension does not name
// a supported video container.
type UnsupportedFormatError struct {
	// Ext is the extension as given, without the leading dot.
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("video format %q is not supported or recognized", e.Ext)
}

// OpenError is returned when the output file or container header cannot
// be written.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open video recorder %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// FrameSizeError is returned when a frame's bounds do not match the
// geometry the recorder was created with.
type FrameSizeError struct {
	WantWidth  int
	WantHeight int
	GotWidth   int
	GotHeight  int
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("expected %dx%d frame, got %dx%d",
		e.WantWidth, e.WantHeight, e.GotWidth, e.GotHeight)
}
