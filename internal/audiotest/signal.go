// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic sample data for recorder
// tests.
package audiotest

import "math"

// Sine returns totalSamples of a mono sine wave at the given frequency.
func Sine(sampleRate, totalSamples int, frequency float64) []float32 {
	out := make([]float32, totalSamples)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(math.Sin(2 * math.Pi * frequency * t))
	}

	return out
}

// Silence returns totalSamples of zero-valued mono samples.
func Silence(totalSamples int) []float32 {
	return make([]float32, totalSamples)
}

// Constant returns a frame grid of frames rows, channels columns, every
// sample set to value.
func Constant(frames, channels int, value float32) [][]float32 {
	out := make([][]float32, frames)
	for i := range out {
		row := make([]float32, channels)
		for ch := range row {
			row[ch] = value
		}
		out[i] = row
	}

	return out
}

// Ramp returns a frame grid where channel ch of frame i holds the value
// waveform(i, ch). It mirrors how multi-channel sources interleave data.
func Ramp(frames, channels int, waveform func(frame, channel int) float32) [][]float32 {
	out := make([][]float32, frames)
	for i := range out {
		row := make([]float32, channels)
		for ch := range row {
			row[ch] = waveform(i, ch)
		}
		out[i] = row
	}

	return out
}
