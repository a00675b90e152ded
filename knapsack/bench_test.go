// Package knapsack_test — benchmarks for every solver through Solve.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/knapsack"
)

func benchInstance(n int) knapsack.Instance {
	rng := rand.New(rand.NewSource(seedDet))
	items := randomItems(rng, n, 100, 100)

	return knapsack.Instance{Number: n, Capacity: totalWeight(items) / 2, Items: items}
}

func benchSolve(b *testing.B, inst knapsack.Instance, m knapsack.Method) {
	opts := knapsack.DefaultOptions()
	opts.Method = m
	opts.Seed = seedDet

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := knapsack.Solve(inst, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBruteForce_N16(b *testing.B) { benchSolve(b, benchInstance(16), knapsack.MethodBruteForce) }
func BenchmarkRatioGreedy_N1000(b *testing.B) {
	benchSolve(b, benchInstance(1000), knapsack.MethodRatioGreedy)
}
func BenchmarkDynamic_N100(b *testing.B) { benchSolve(b, benchInstance(100), knapsack.MethodDynamic) }
func BenchmarkBranchAndBound_N40(b *testing.B) {
	benchSolve(b, benchInstance(40), knapsack.MethodBranchAndBound)
}
func BenchmarkFPTAS_N100(b *testing.B)     { benchSolve(b, benchInstance(100), knapsack.MethodFPTAS) }
func BenchmarkAnnealing_N100(b *testing.B) { benchSolve(b, benchInstance(100), knapsack.MethodAnnealing) }
