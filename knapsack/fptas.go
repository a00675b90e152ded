package knapsack

import (
	"fmt"
	"math"
)

// FPTAS approximates the optimum by coarsening weights and running the exact
// DP on the coarse instance:
//
//	w'ᵢ = roundHalfEven(wᵢ / s) + 1
//	C'  = ⌊C / s⌋
//
// The "+1" keeps every rescaled weight ≥ 1, so the coarse table never selects
// zero-weight items for free. Costs are not rescaled, so the returned Cost is
// the true cost of the selected items.
//
// Since w'ᵢ ≥ wᵢ/s + ½, any selection that fits C' also fits C in the original
// units. The returned combination is still re-checked against the true
// capacity and the true weights.
//
// Larger s ⇒ smaller table, faster and coarser.
//
// Errors: ErrInvalidInput family; ErrScalingFactor if s ≤ 1;
// ErrInfeasibleCombination if the true-capacity check fails.
//
// Complexity: O(n·C/s) time and space.
func FPTAS(number int, capacity int64, items []Item, scalingFactor float64) (Result, error) {
	if err := validateInstance(number, capacity, items); err != nil {
		return Result{}, err
	}
	if err := validateScalingFactor(scalingFactor); err != nil {
		return Result{}, err
	}

	scaled := make([]Item, len(items))
	var (
		i  int
		it Item
	)
	for i, it = range items {
		scaled[i] = Item{
			Weight: int64(math.RoundToEven(float64(it.Weight)/scalingFactor)) + 1,
			Cost:   it.Cost,
		}
	}
	scaledCapacity := int64(math.Floor(float64(capacity) / scalingFactor))

	res, err := solveDP(scaledCapacity, scaled)
	if err != nil {
		return Result{}, err
	}
	if err = ValidateCombination(res.Combination, items, capacity); err != nil {
		return Result{}, fmt.Errorf("fptas (s=%v): %w", scalingFactor, err)
	}

	return res, nil
}
