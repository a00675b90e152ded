// Package knapsack — combination helpers shared by every solver.
//
// A Combination is the 0/1 selection vector returned to callers. Solvers build
// it from whatever internal representation they search over (index lists,
// bitsets, DP backtracking) through the helpers below, so every solver returns
// the same shape: len == number, entries ∈ {0, 1}.
package knapsack

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Combination is a binary selection vector: c[i] == 1 iff item i is selected.
type Combination []int

// NewCombination returns an all-zero combination of length n.
func NewCombination(n int) Combination {
	return make(Combination, n)
}

// Weight sums the weights of the selected items.
// Entries beyond len(items) are ignored.
//
// Complexity: O(n).
func (c Combination) Weight(items []Item) int64 {
	var (
		sum int64
		i   int
	)
	for i = 0; i < len(c) && i < len(items); i++ {
		if c[i] == 1 {
			sum += items[i].Weight
		}
	}

	return sum
}

// Cost sums the costs of the selected items.
//
// Complexity: O(n).
func (c Combination) Cost(items []Item) int64 {
	var (
		sum int64
		i   int
	)
	for i = 0; i < len(c) && i < len(items); i++ {
		if c[i] == 1 {
			sum += items[i].Cost
		}
	}

	return sum
}

// Selected returns the indices of the selected items in ascending order.
func (c Combination) Selected() []int {
	out := make([]int, 0, len(c))
	for i, v := range c {
		if v == 1 {
			out = append(out, i)
		}
	}

	return out
}

// String renders the flags separated by single spaces ("1 0 1").
func (c Combination) String() string {
	buf := make([]byte, 0, 2*len(c))
	for i, v := range c {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, byte('0'+v))
	}

	return string(buf)
}

// ValidateCombination checks that c has exactly len(items) entries, each 0 or
// 1, and that the selected items weigh at most capacity. The weight is summed
// with an overflow check, so items outside the validated range are still
// judged correctly.
//
// Errors: ErrInfeasibleCombination (wrapped with the failing detail).
//
// Complexity: O(n).
func ValidateCombination(c Combination, items []Item, capacity int64) error {
	if len(c) != len(items) {
		return fmt.Errorf("%w: length %d, want %d", ErrInfeasibleCombination, len(c), len(items))
	}

	var (
		sum int64
		w   int64
	)
	for i, v := range c {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: entry %d = %d", ErrInfeasibleCombination, i, v)
		}
		if v == 0 {
			continue
		}
		w = items[i].Weight
		if w > 0 && sum > math.MaxInt64-w {
			return fmt.Errorf("%w: selected weight overflows int64 at item %d", ErrInfeasibleCombination, i)
		}
		sum += w
	}
	if sum > capacity {
		return fmt.Errorf("%w: weight %d exceeds capacity %d", ErrInfeasibleCombination, sum, capacity)
	}

	return nil
}

// combinationFromIndices marks every index in idx.
func combinationFromIndices(n int, idx []int) Combination {
	c := NewCombination(n)
	for _, i := range idx {
		c[i] = 1
	}

	return c
}

// combinationFromBitset marks every set bit of b below n.
func combinationFromBitset(n int, b *bitset.BitSet) Combination {
	c := NewCombination(n)
	for i, ok := b.NextSet(0); ok && int(i) < n; i, ok = b.NextSet(i + 1) {
		c[i] = 1
	}

	return c
}
