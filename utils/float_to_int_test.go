// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  math.MinInt16,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16383, // math.MaxInt16 * 0.5 ≈ 16383.5
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16383,
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp under min",
			input: -1.5,
			want:  math.MinInt16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			// Allow for rounding differences of ±1
			diff := int16(math.Abs(float64(got - tt.want)))

			if diff > 1 {
				t.Errorf("Float32ToInt16(%v) = %v, want %v (diff %v)",
					tt.input, got, tt.want, diff)
			}
		})
	}
}

// TestFloat32ToInt16Monotonic tests that the conversion preserves ordering.
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func TestAppendInt16(t *testing.T) {
	t.Parallel()

	got := AppendInt16(nil, []float32{0, 0.5, -0.5, 1, -1})
	want := []int16{0, 16383, -16383, math.MaxInt16, math.MinInt16}

	if len(got) != len(want) {
		t.Fatalf("AppendInt16 returned %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		diff := int16(math.Abs(float64(got[i] - want[i])))
		if diff > 1 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAppendInt16_Extends(t *testing.T) {
	t.Parallel()

	dst := []int16{1, 2}
	got := AppendInt16(dst, []float32{0, 0})

	if len(got) != 4 {
		t.Fatalf("AppendInt16 returned %d samples, want 4", len(got))
	}
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("AppendInt16 clobbered existing samples: %v", got[:2])
	}
	if got[2] != 0 || got[3] != 0 {
		t.Errorf("AppendInt16 appended %v, want zeros", got[2:])
	}
}

// BenchmarkFloat32ToInt16 tests performance and allocations
func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16
	input := float32(0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = Float32ToInt16(input)
	}

	// Prevent compiler optimization
	_ = result
}
