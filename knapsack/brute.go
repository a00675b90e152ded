package knapsack

import "fmt"

// BruteForce solves the instance exactly by enumerating every non-empty
// subset, grouped by size (1, 2, …, n) and in lexicographic index order within
// a size. The first subset reaching the best cost wins: later subsets only
// replace the incumbent when strictly better.
//
// If no non-empty subset fits (or number == 0) the result is cost 0 with an
// all-zero combination.
//
// Errors: ErrInvalidInput family; ErrInstanceTooLarge if n > MaxBruteForceItems.
//
// Complexity: O(2ⁿ·n) time, O(n) space. Intended as a ground-truth oracle.
func BruteForce(number int, capacity int64, items []Item) (Result, error) {
	if err := validateInstance(number, capacity, items); err != nil {
		return Result{}, err
	}
	if number > MaxBruteForceItems {
		return Result{}, fmt.Errorf("%w: n=%d, limit=%d", ErrInstanceTooLarge, number, MaxBruteForceItems)
	}

	var (
		bestCost int64 = -1
		best     = make([]int, 0, number)
		idx      = make([]int, number) // current k-combination, idx[0] < … < idx[k-1]
		k, i     int
		w, c     int64
	)
	for k = 1; k <= number; k++ {
		// First k-combination: 0, 1, …, k-1.
		for i = 0; i < k; i++ {
			idx[i] = i
		}
		for {
			w, c = 0, 0
			for i = 0; i < k; i++ {
				w += items[idx[i]].Weight
				c += items[idx[i]].Cost
			}
			if w <= capacity && c > bestCost {
				bestCost = c
				best = append(best[:0], idx[:k]...)
			}

			// Advance to the next k-combination in lexicographic order:
			// find the rightmost position that can still be incremented.
			i = k - 1
			for i >= 0 && idx[i] == number-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for i++; i < k; i++ {
				idx[i] = idx[i-1] + 1
			}
		}
	}

	if bestCost < 0 {
		return Result{Cost: 0, Combination: NewCombination(number)}, nil
	}

	return Result{Cost: bestCost, Combination: combinationFromIndices(number, best)}, nil
}
