// Package knapsack_test provides small helpers shared across *_test.go files:
// canonical instances, a seeded random instance generator and result checks.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/knapsack"
)

const (
	// seedDet is the deterministic seed used by randomized tests.
	seedDet = int64(42)

	// smallN bounds the instance size for brute-force cross checks.
	smallN = 12
)

// scenarioItems is the canonical small instance: capacity 5 ⇒ optimum 7 with items 0 and 1.
func scenarioItems() []knapsack.Item {
	return []knapsack.Item{{Weight: 2, Cost: 3}, {Weight: 3, Cost: 4}, {Weight: 4, Cost: 5}, {Weight: 5, Cost: 6}}
}

// randomItems draws n items with weights in [0, maxW] and costs in [0, maxC].
func randomItems(rng *rand.Rand, n int, maxW, maxC int64) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{
			Weight: rng.Int63n(maxW + 1),
			Cost:   rng.Int63n(maxC + 1),
		}
	}

	return items
}

// totalWeight sums every item weight.
func totalWeight(items []knapsack.Item) int64 {
	var s int64
	for _, it := range items {
		s += it.Weight
	}

	return s
}

// randomInstance draws a small instance whose capacity is a random fraction
// of the total weight.
func randomInstance(rng *rand.Rand, id int) knapsack.Instance {
	n := rng.Intn(smallN + 1)
	items := randomItems(rng, n, 20, 30)
	capacity := rng.Int63n(totalWeight(items) + 1)

	return knapsack.Instance{ID: id, Number: n, Capacity: capacity, Items: items}
}

// requireValid asserts the result shape, feasibility and the cost/combination agreement.
func requireValid(t *testing.T, res knapsack.Result, items []knapsack.Item, capacity int64) {
	t.Helper()
	require.NoError(t, knapsack.ValidateCombination(res.Combination, items, capacity))
	require.Equal(t, res.Combination.Cost(items), res.Cost, "reported cost must match the combination")
}

// exactSolvers lists the solvers that must return the optimum.
func exactSolvers() map[string]func(int, int64, []knapsack.Item) (knapsack.Result, error) {
	return map[string]func(int, int64, []knapsack.Item) (knapsack.Result, error){
		"brute":   knapsack.BruteForce,
		"dynamic": knapsack.DynamicProgramming,
		"bandb":   knapsack.BranchAndBound,
	}
}
