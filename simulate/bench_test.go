package simulate_test

import (
	"testing"

	"github.com/katalvlaran/refnet/simulate"
)

func BenchmarkSimulate_365Days(b *testing.B) {
	s := simulate.New(simulate.WithSeed(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Simulate(0.35, 365)
	}
}

func BenchmarkDaysToTarget(b *testing.B) {
	s := simulate.New(simulate.WithSeed(1))
	for i := 0; i < b.N; i++ {
		_, _ = s.DaysToTarget(0.35, 1000)
	}
}
