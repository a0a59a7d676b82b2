package densearena_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/pavanmanishd/densearena"
)

// BenchmarkConcurrencyPatterns tests various concurrent usage patterns
func BenchmarkConcurrencyPatterns(b *testing.B) {

	// Sequential vs Parallel SafeArena usage
	b.Run("SafeArena_Sequential", func(b *testing.B) {
		s := densearena.NewSafe[densearena.Ref[int64], int64](0)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Push(int64(i))
			if i%1000 == 999 {
				s.Clear()
			}
		}
	})

	b.Run("SafeArena_Parallel", func(b *testing.B) {
		s := densearena.NewSafe[densearena.Ref[int64], int64](0)

		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				s.Push(int64(i))
				i++
				if i%1000 == 999 {
					s.Clear()
				}
			}
		})
	})

	// Arena per goroutine vs shared SafeArena
	b.Run("Arena_PerGoroutine", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			a := densearena.New[densearena.Ref[int64], int64]()

			i := 0
			for pb.Next() {
				a.Push(int64(i))
				i++
				if i%1000 == 999 {
					a.Clear()
				}
			}
		})
	})
}

// BenchmarkReadMostly measures shared reads against occasional writes
func BenchmarkReadMostly(b *testing.B) {
	for _, writeEvery := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("WriteEvery_%d", writeEvery), func(b *testing.B) {
			s := densearena.NewSafe[densearena.Ref[int64], int64](0)
			for i := 0; i < 1024; i++ {
				s.Push(int64(i))
			}

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					if i%writeEvery == 0 {
						s.Push(int64(i))
					} else {
						s.Get(densearena.Ref[int64](i % 1024))
					}
					i++
				}
			})
		})
	}
}

// BenchmarkScalability tests performance scaling with goroutine count
func BenchmarkScalability(b *testing.B) {
	for _, procs := range []int{1, 2, 4, runtime.GOMAXPROCS(0)} {
		b.Run(fmt.Sprintf("Readers_%d", procs), func(b *testing.B) {
			s := densearena.NewSafe[densearena.Ref[int64], int64](0)
			for i := 0; i < 4096; i++ {
				s.Push(int64(i))
			}
			b.SetParallelism(procs)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					s.Read(func(v densearena.View[densearena.Ref[int64], int64]) {
						var sum int64
						for x := range v.Values() {
							sum += x
						}
						_ = sum
					})
				}
			})
		})
	}
}
