// SPDX-License-Identifier: EPL-2.0

package caf

import "errors"

var (
	ErrChannelLayout = errors.New("alac writer supports mono and stereo only")
)
