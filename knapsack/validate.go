// Package knapsack — validation utilities shared by every solver.
//
// Each solver validates its own inputs upfront (it may be called directly,
// not only through Solve), and Solve additionally validates Options before
// routing. All helpers are side-effect free and return sentinel errors from
// types.go wrapped with the offending value.
package knapsack

import (
	"fmt"
	"math"
)

// validateInstance verifies number == len(items) ≥ 0, capacity ≥ 0,
// non-negative weights and costs, a total weight that fits int64 and a total
// cost of at most MaxTotalCost. With those totals in range no solver sum can
// overflow.
//
// Complexity: O(n).
func validateInstance(number int, capacity int64, items []Item) error {
	if number < 0 || number != len(items) {
		return fmt.Errorf("%w: number=%d, items=%d", ErrItemCountMismatch, number, len(items))
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity=%d", ErrNegativeCapacity, capacity)
	}

	var (
		i           int
		it          Item
		totalWeight int64
		totalCost   int64
	)
	for i, it = range items {
		if it.Weight < 0 {
			return fmt.Errorf("%w: item %d weight=%d", ErrNegativeWeight, i, it.Weight)
		}
		if it.Cost < 0 {
			return fmt.Errorf("%w: item %d cost=%d", ErrNegativeCost, i, it.Cost)
		}
		if it.Weight > math.MaxInt64-totalWeight {
			return fmt.Errorf("%w: total weight overflows int64 at item %d", ErrValueTooLarge, i)
		}
		totalWeight += it.Weight
		if it.Cost > MaxTotalCost-totalCost {
			return fmt.Errorf("%w: total cost exceeds %d at item %d", ErrValueTooLarge, MaxTotalCost, i)
		}
		totalCost += it.Cost
	}

	return nil
}

// validateScalingFactor requires a finite s > 1.
func validateScalingFactor(s float64) error {
	if !isFinite(s) || s <= 1 {
		return fmt.Errorf("%w: got %v", ErrScalingFactor, s)
	}

	return nil
}

// validateAnnealing requires a finite initTemp > 0, steps > 0 and a cooling
// rate in (0, 1).
func validateAnnealing(initTemp float64, steps int, cooling float64) error {
	if !isFinite(initTemp) || initTemp <= 0 {
		return fmt.Errorf("%w: got %v", ErrTemperature, initTemp)
	}
	if steps <= 0 {
		return fmt.Errorf("%w: got %d", ErrSteps, steps)
	}
	if !isFinite(cooling) || cooling <= 0 || cooling >= 1 {
		return fmt.Errorf("%w: got %v", ErrCoolingRate, cooling)
	}

	return nil
}

// validateOptions checks the method-specific parameters of opts. Parameters
// that the selected method ignores are not checked.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Method {
	case MethodBruteForce, MethodRatioGreedy, MethodDynamic:
		return nil
	case MethodBranchAndBound:
		switch opts.Frontier {
		case BestFirst, BreadthFirst, DepthFirst:
			return nil
		default:
			return fmt.Errorf("%w: %v", ErrUnsupportedFrontier, opts.Frontier)
		}
	case MethodFPTAS:
		return validateScalingFactor(opts.ScalingFactor)
	case MethodAnnealing:
		return validateAnnealing(opts.InitTemp, opts.Steps, opts.CoolingRate)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedMethod, opts.Method)
	}
}
