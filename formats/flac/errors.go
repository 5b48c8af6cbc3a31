// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrTooManyChannels = errors.New("flac supports at most 8 channels")
)
