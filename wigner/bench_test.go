package wigner_test

import (
	"testing"

	"github.com/katalvlaran/spharm/wigner"
)

// benchmarkComputeFull runs the recursion at the top degree of the
// given bandlimit, the worst case for a single matrix.
func benchmarkComputeFull(b *testing.B, L int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wigner.ComputeFull(1.3, L-1, L); err != nil {
			b.Fatalf("ComputeFull failed: %v", err)
		}
	}
}

// BenchmarkComputeFull_L32 benchmarks a degree-31 matrix.
func BenchmarkComputeFull_L32(b *testing.B) { benchmarkComputeFull(b, 32) }

// BenchmarkComputeFull_L128 benchmarks a degree-127 matrix.
func BenchmarkComputeFull_L128(b *testing.B) { benchmarkComputeFull(b, 128) }

// BenchmarkComputeFull_L512 benchmarks a degree-511 matrix, deep inside
// the regime where the raw recurrence would overflow without the
// log-domain renormalisation.
func BenchmarkComputeFull_L512(b *testing.B) { benchmarkComputeFull(b, 512) }

// BenchmarkComputeSpinSlice_L128 benchmarks the single-slice variant.
func BenchmarkComputeSpinSlice_L128(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wigner.ComputeSpinSlice(1.3, 127, 128, 2); err != nil {
			b.Fatalf("ComputeSpinSlice failed: %v", err)
		}
	}
}
