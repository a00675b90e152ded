package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/knapsack"
)

// TestExact_Scenario: capacity 5 over (2,3),(3,4),(4,5),(5,6) ⇒ cost 7, items 0 and 1.
func TestExact_Scenario(t *testing.T) {
	items := scenarioItems()
	for name, solve := range exactSolvers() {
		t.Run(name, func(t *testing.T) {
			res, err := solve(len(items), 5, items)
			require.NoError(t, err)
			assert.Equal(t, int64(7), res.Cost)
			assert.Equal(t, knapsack.Combination{1, 1, 0, 0}, res.Combination)
		})
	}
}

// TestExact_EdgeCases covers empty instances, zero capacity and exact fits.
func TestExact_EdgeCases(t *testing.T) {
	cases := []struct {
		name     string
		capacity int64
		items    []knapsack.Item
		wantCost int64
		wantComb knapsack.Combination
	}{
		{
			name:     "no items",
			capacity: 10,
			items:    []knapsack.Item{},
			wantCost: 0,
			wantComb: knapsack.Combination{},
		},
		{
			name:     "zero capacity",
			capacity: 0,
			items:    []knapsack.Item{{Weight: 1, Cost: 5}, {Weight: 2, Cost: 9}},
			wantCost: 0,
			wantComb: knapsack.Combination{0, 0},
		},
		{
			name:     "zero capacity with weightless item",
			capacity: 0,
			items:    []knapsack.Item{{Weight: 0, Cost: 5}, {Weight: 1, Cost: 3}},
			wantCost: 5,
			wantComb: knapsack.Combination{1, 0},
		},
		{
			name:     "single item fills capacity",
			capacity: 5,
			items:    []knapsack.Item{{Weight: 5, Cost: 10}},
			wantCost: 10,
			wantComb: knapsack.Combination{1},
		},
		{
			name:     "nothing fits",
			capacity: 3,
			items:    []knapsack.Item{{Weight: 4, Cost: 10}, {Weight: 7, Cost: 1}},
			wantCost: 0,
			wantComb: knapsack.Combination{0, 0},
		},
		{
			name:     "everything fits",
			capacity: 100,
			items:    []knapsack.Item{{Weight: 4, Cost: 10}, {Weight: 7, Cost: 1}, {Weight: 0, Cost: 2}},
			wantCost: 13,
			wantComb: knapsack.Combination{1, 1, 1},
		},
	}

	for name, solve := range exactSolvers() {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				res, err := solve(len(tc.items), tc.capacity, tc.items)
				require.NoError(t, err)
				assert.Equal(t, tc.wantCost, res.Cost)
				assert.Equal(t, tc.wantComb, res.Combination)
				requireValid(t, res, tc.items, tc.capacity)
			})
		}
	}
}

// TestBruteForce_FirstFoundWinsTies: {0} and {1} both cost 4; the size-1 subset
// with the lowest index is found first and kept.
func TestBruteForce_FirstFoundWinsTies(t *testing.T) {
	items := []knapsack.Item{{Weight: 3, Cost: 4}, {Weight: 3, Cost: 4}, {Weight: 1, Cost: 1}}
	res, err := knapsack.BruteForce(len(items), 3, items)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, knapsack.Combination{1, 0, 0}, res.Combination)
}

// TestBruteForce_DuplicateItemsKeepPositions: equal items are distinct positions.
func TestBruteForce_DuplicateItemsKeepPositions(t *testing.T) {
	items := []knapsack.Item{{Weight: 2, Cost: 2}, {Weight: 2, Cost: 2}, {Weight: 2, Cost: 2}}
	res, err := knapsack.BruteForce(len(items), 4, items)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, knapsack.Combination{1, 1, 0}, res.Combination)
}

// TestExact_Idempotent: identical inputs give identical outputs, and the
// input slice is left untouched.
func TestExact_Idempotent(t *testing.T) {
	items := []knapsack.Item{
		{Weight: 12, Cost: 24}, {Weight: 7, Cost: 13}, {Weight: 11, Cost: 23}, {Weight: 8, Cost: 15},
		{Weight: 9, Cost: 16}, {Weight: 6, Cost: 11}, {Weight: 5, Cost: 9}, {Weight: 14, Cost: 28},
	}
	snapshot := append([]knapsack.Item(nil), items...)

	for name, solve := range exactSolvers() {
		t.Run(name, func(t *testing.T) {
			first, err := solve(len(items), 26, items)
			require.NoError(t, err)
			second, err := solve(len(items), 26, items)
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.Equal(t, int64(52), first.Cost)
			assert.Equal(t, snapshot, items)
		})
	}
}
