// SPDX-License-Identifier: EPL-2.0

package recorder

import "errors"

var (
	// ErrClosed is returned by Write once a recorder has been closed.
	// It reports a usage error, not a transient condition; the recorder
	// stays closed.
	ErrClosed = errors.New("recorder is already closed")
)
