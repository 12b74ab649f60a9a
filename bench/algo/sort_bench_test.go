package algo

import (
	"math/rand"
	"testing"
)

// Generate random data for benchmarks
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(100000)
	}
	return data
}

func BenchmarkSort_1000(b *testing.B) {
	benchmarkAll(b, 1000, func(ID) bool { return true })
}

func BenchmarkSort_100000(b *testing.B) {
	// The quadratic sorts would dominate the run at this size.
	benchmarkAll(b, 100000, func(id ID) bool {
		return id != Bubble && id != Selection && id != Insertion
	})
}

func benchmarkAll(b *testing.B, n int, include func(ID) bool) {
	// Generate reference data
	ref := generateInts(n)
	data := make([]int, n)

	for _, id := range IDs() {
		if !include(id) {
			continue
		}
		sort := id.Func()
		b.Run(id.String(), func(b *testing.B) {
			for b.Loop() {
				copy(data, ref)
				sort(data)
			}
		})
	}
}
