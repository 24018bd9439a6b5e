package fixedvec_test

import (
	"testing"

	"github.com/arraykit/arraykit/fixedvec"
)

// benchmarkFillTake fills a Vec of the given capacity and takes the result,
// per iteration. The fill itself is allocation-free; Take pays the re-arm.
func benchmarkFillTake(b *testing.B, capacity int) {
	v := fixedvec.New[int](capacity)

	b.ResetTimer() // ignore construction
	for i := 0; i < b.N; i++ {
		for j := 0; j < capacity; j++ {
			if err := v.TryPush(j); err != nil {
				b.Fatalf("TryPush failed: %v", err)
			}
		}
		if out := v.Take(); len(out) != capacity {
			b.Fatalf("Take returned %d items, want %d", len(out), capacity)
		}
	}
}

// BenchmarkFillTake_Small exercises a 64-slot Vec per iteration.
func BenchmarkFillTake_Small(b *testing.B) { benchmarkFillTake(b, 64) }

// BenchmarkFillTake_Medium exercises a 1k-slot Vec per iteration.
func BenchmarkFillTake_Medium(b *testing.B) { benchmarkFillTake(b, 1024) }

// BenchmarkFillTake_Large exercises a 64k-slot Vec per iteration.
func BenchmarkFillTake_Large(b *testing.B) { benchmarkFillTake(b, 65536) }

// BenchmarkClear measures in-place truncation of a full 1k-slot Vec.
func BenchmarkClear(b *testing.B) {
	const capacity = 1024
	v := fixedvec.New[int](capacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < capacity; j++ {
			_ = v.TryPush(j)
		}
		v.Clear(nil)
	}
}
