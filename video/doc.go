// SPDX-License-Identifier: EPL-2.0

// Package video records sequences of images as motion-JPEG video files
// in an AVI container.
//
// Each image passed to Write is JPEG-encoded and appended as one frame.
// The frame rate and geometry are fixed when the recorder is created,
// and every frame must match the configured width and height. The AVI
// index and size fields are finalized when the recorder is closed.
package video
