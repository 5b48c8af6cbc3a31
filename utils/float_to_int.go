// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts one sample in [-1, 1] to signed 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// AppendInt16 converts src to 16-bit PCM and appends it to dst,
// returning the extended slice. dst may be nil.
func AppendInt16(dst []int16, src []float32) []int16 {
	if cap(dst)-len(dst) < len(src) {
		grown := make([]int16, len(dst), len(dst)+len(src))
		copy(grown, dst)
		dst = grown
	}

	for _, x := range src {
		dst = append(dst, Float32ToInt16(x))
	}

	return dst
}
