package knapsack

// RatioGreedy walks the items in descending cost/weight order and takes each
// one that still fits. A single irrevocable pass: no backtracking, no
// optimality guarantee.
//
// Errors: ErrInvalidInput family.
//
// Complexity: O(n log n) time, O(n) space.
func RatioGreedy(number int, capacity int64, items []Item) (Result, error) {
	if err := validateInstance(number, capacity, items); err != nil {
		return Result{}, err
	}

	var (
		comb   = NewCombination(number)
		cost   int64
		weight int64
		r      Ranked
		it     Item
	)
	for _, r = range RankByRatio(items) {
		it = items[r.Index]
		if weight+it.Weight <= capacity {
			weight += it.Weight
			cost += it.Cost
			comb[r.Index] = 1
		}
	}

	return Result{Cost: cost, Combination: comb}, nil
}
